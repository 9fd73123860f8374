package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config       *Config
	watchEnabled bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithWatcher enables the templates directory watcher.
func WithWatcher(enabled bool) Option {
	return func(a *application) {
		a.watchEnabled = enabled
	}
}
