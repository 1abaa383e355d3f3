package fixeddecimal

import "fmt"

// Config captures formatter construction inputs.
type Config struct {
	Locale   string
	Provider SymbolsProvider
	Loader   Loader
	Grouping GroupingStrategy
}

// Option mutates Config during construction.
type Option func(*Config) error

// newConfig applies options and fills defaults.
func newConfig(locale string, opts ...Option) (*Config, error) {
	cfg := &Config{Locale: locale}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Provider == nil {
		if cfg.Loader != nil {
			provider, err := NewStaticProviderFromLoader(cfg.Loader)
			if err != nil {
				return nil, err
			}
			cfg.Provider = provider
		} else {
			cfg.Provider = BuiltinProvider()
		}
	}

	return cfg, nil
}

// WithLocale overrides the locale passed to New.
func WithLocale(locale string) Option {
	return func(cfg *Config) error {
		if locale == "" {
			return fmt.Errorf("%w: empty locale", ErrLocaleUndefined)
		}
		cfg.Locale = locale
		return nil
	}
}

// WithProvider installs an explicit symbols provider.
func WithProvider(provider SymbolsProvider) Option {
	return func(cfg *Config) error {
		if provider == nil {
			return fmt.Errorf("%w: nil provider", ErrDataMissing)
		}
		cfg.Provider = provider
		return nil
	}
}

// WithLoader seeds the provider from a loader when no provider is set.
func WithLoader(loader Loader) Option {
	return func(cfg *Config) error {
		cfg.Loader = loader
		return nil
	}
}

// WithSymbolFiles seeds the provider from bundle files on disk.
func WithSymbolFiles(paths ...string) Option {
	return func(cfg *Config) error {
		if len(paths) == 0 {
			return nil
		}
		cfg.Loader = NewFileLoader(paths...)
		return nil
	}
}

// WithGrouping selects the grouping strategy.
func WithGrouping(strategy GroupingStrategy) Option {
	return func(cfg *Config) error {
		switch strategy {
		case GroupingAuto, GroupingNever, GroupingAlways, GroupingMin2:
			cfg.Grouping = strategy
			return nil
		default:
			return fmt.Errorf("%w: grouping %d", ErrUnsupported, int(strategy))
		}
	}
}
