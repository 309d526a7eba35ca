package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SubjectID records the metered subject identifier under the key "subject_id".
// If id is nil, it returns an empty Attr.
func SubjectID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("subject_id", id)
}

// Model records the AI model identifier under the key "model".
func Model(name string) slog.Attr {
	return slog.String("model", name)
}

// Provider records the model provider under the key "provider".
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// Credits records a credit amount under the key "credits".
func Credits(amount int64) slog.Attr {
	return slog.Int64("credits", amount)
}

// Tier records a plan tier under the key "tier".
// If tier is nil, it returns an empty Attr.
func Tier(tier any) slog.Attr {
	if tier == nil {
		return slog.Attr{}
	}
	return slog.Any("tier", tier)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
