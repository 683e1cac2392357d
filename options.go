package dropdown

// Option configures a control at creation.
type Option func(*options)

// options holds control configuration via the extensions map.
// All options use the OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for control options.
//
// Example:
//
//	var OptPlaceholder = dropdown.NewOptKey("placeholder", "")
//	c := dropdown.New(scr, dropdown.WithOpt(OptPlaceholder, "Pick one"))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		dropdownLogger.Warn("option has the wrong type", "key", key.Name(), "value", v)
		return key.Default()
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// DefaultOptions is the option text of a new control.
const DefaultOptions = "Option 1\nOption 2\nOption 3"

// DefaultSymbol is the closed-state symbol of a new control.
const DefaultSymbol = "▼"

// DefaultWidth is the width of a new control.
const DefaultWidth float32 = 150

var (
	OptOptions       = NewOptKey("options", "")
	OptStaticOptions = NewOptKey("staticOptions", DefaultOptions)
	OptDirection     = NewOptKey("direction", DirDown)
	OptMaxHeight     = NewOptKey[float32]("maxHeight", 0) // unset: 3/4 of the viewport height
	OptSymbol        = NewOptKey("symbol", DefaultSymbol)
	OptText          = NewOptKey("text", "")
	OptWidth         = NewOptKey("width", DefaultWidth)
	OptPos           = NewOptKey("pos", Vec2{})
	OptStyles        = NewOptKey("styles", DefaultStyles())
	OptProcessor     = NewOptKey[TextProcessor]("textProcessor", nil)
	OptGroup         = NewOptKey[*Group]("group", nil)
	OptOnChange      = NewOptKey[ChangeHandler]("onChange", nil)
)

// WithOptions sets an owned copy of the `\n`-delimited option text.
func WithOptions(text string) Option { return WithOpt(OptOptions, text) }

// WithStaticOptions references text without copying it.
func WithStaticOptions(text string) Option { return WithOpt(OptStaticOptions, text) }

// WithDirection sets the side the overlay opens towards.
func WithDirection(dir Direction) Option { return WithOpt(OptDirection, dir) }

// WithMaxHeight bounds the overlay height.
func WithMaxHeight(h float32) Option { return WithOpt(OptMaxHeight, h) }

// WithSymbol sets the closed-state symbol.
func WithSymbol(symbol string) Option { return WithOpt(OptSymbol, symbol) }

// WithNoSymbol hides the closed-state symbol.
func WithNoSymbol() Option { return WithOpt(OptSymbol, "") }

// WithText shows text on the closed control instead of the selected option.
func WithText(text string) Option { return WithOpt(OptText, text) }

// WithWidth sets the control width.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithPos sets the control position.
func WithPos(x, y float32) Option { return WithOpt(OptPos, Vec2{X: x, Y: y}) }

// WithStyles sets the part styles.
func WithStyles(s Styles) Option { return WithOpt(OptStyles, s) }

// WithTextProcessor transforms option text before it is stored.
func WithTextProcessor(p TextProcessor) Option { return WithOpt(OptProcessor, p) }

// WithGroup adds the control to a focus group.
func WithGroup(g *Group) Option { return WithOpt(OptGroup, g) }

// OnChange sets the selection-changed handler.
func OnChange(fn ChangeHandler) Option { return WithOpt(OptOnChange, fn) }
