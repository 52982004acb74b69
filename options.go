package logging

type options struct {
	config    Configuration
	observers []Observer
}

// Option configures NewRegistry.
type Option func(*options)

// WithConfiguration seeds the registry with a configuration so that writers
// created before the first InstallConfiguration call already carry a real
// mask instead of the all-inactive default.
func WithConfiguration(cfg Configuration) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithObserver attaches an observer at construction time, before any
// registration can happen. May be given multiple times; observers are
// notified in registration order.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}
