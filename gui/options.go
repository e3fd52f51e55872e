package gui

// Option configures a UI widget.
type Option func(*options)

// options holds widget configuration keyed by option name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	var OptCustomThing = gui.NewOptKey("customThing", defaultValue)
//	ctx.MyWidget("id", gui.WithOpt(OptCustomThing, value))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var (
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptFormat   = NewOptKey("format", "")
	OptStep     = NewOptKey[float32]("step", 0)
)

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth sets a specific width for the widget.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithFormat sets the display format for numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep snaps slider values to multiples of step.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }
