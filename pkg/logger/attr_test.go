package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/creditkit/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error attr", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())

		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("nil-safe identifiers", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Attr{}, logger.SubjectID(nil))
		assert.Equal(t, slog.Attr{}, logger.Tier(nil))

		attr := logger.SubjectID("sub-1")
		assert.Equal(t, "subject_id", attr.Key)
	})

	t.Run("domain attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "model", logger.Model("gpt-4o").Key)
		assert.Equal(t, "provider", logger.Provider("openai").Key)

		credits := logger.Credits(42)
		assert.Equal(t, "credits", credits.Key)
		assert.Equal(t, int64(42), credits.Value.Int64())
	})
}
