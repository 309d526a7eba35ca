package logger

// Config holds environment-driven logger settings. Unknown level and
// format values degrade to the production defaults instead of erroring.
type Config struct {
	Level     string `env:"LOG_LEVEL" envDefault:"info"`
	Format    string `env:"LOG_FORMAT" envDefault:"json"`
	AddSource bool   `env:"LOG_ADD_SOURCE" envDefault:"false"`
}
