package avatar

// Option configures avatar and color generation behavior.
type Option func(*config)

// Shape selects the avatar background shape.
type Shape string

// Recognized shapes. Any other value falls back to the circle rendering.
const (
	ShapeCircle Shape = "circle"
	ShapeRect   Shape = "rect"
)

// Recognized color literals. Any other non-empty value is passed through
// verbatim as a raw CSS color (hex codes, named colors, anything).
const (
	ColorGrey   = "grey"
	ColorBlack  = "black"
	ColorRandom = "random"
)

// config holds the configuration for avatar and color generation.
type config struct {
	color      string
	shape      Shape
	size       float64
	saturation int
	value      int
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		color:      "", // derive from a hash of the name
		shape:      ShapeCircle,
		size:       defaultSize,
		saturation: defaultSaturation,
		value:      defaultValue,
	}
}

// newConfig applies the given options on top of the defaults.
func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithColor sets the background color. The literals ColorGrey, ColorBlack
// and ColorRandom are recognized; any other value is used verbatim as a raw
// CSS color with no validation. Leave unset to derive the color from a hash
// of the name.
func WithColor(color string) Option {
	return func(c *config) {
		c.color = color
	}
}

// WithShape sets the background shape.
// Default is ShapeCircle; unrecognized values render as circles too.
func WithShape(shape Shape) Option {
	return func(c *config) {
		c.shape = shape
	}
}

// WithSize sets the avatar side length in pixels.
// Default is 100. The value is not validated.
func WithSize(size float64) Option {
	return func(c *config) {
		c.size = size
	}
}

// WithSaturation overrides the HSV saturation [0,100] used when the
// background color is derived or random. Default is 50.
func WithSaturation(saturation int) Option {
	return func(c *config) {
		c.saturation = saturation
	}
}

// WithValue overrides the HSV value [0,100] used when the background color
// is derived or random. Default is 90.
func WithValue(value int) Option {
	return func(c *config) {
		c.value = value
	}
}
