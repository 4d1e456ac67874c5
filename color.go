package avatar

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Default HSV components for derived and random colors.
const (
	defaultSaturation = 50
	defaultValue      = 90
)

// HSV is a color in the hue/saturation/value model. Hue is an angle in
// degrees; saturation and value are percentages on a 0-100 scale.
type HSV struct {
	Hue        int
	Saturation int
	Value      int
}

// RGB is a color with 8-bit red, green and blue channels in [0, 255].
type RGB struct {
	Red   int
	Green int
	Blue  int
}

var (
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	mu  sync.Mutex
)

// HSVToRGB converts an HSV color to 8-bit RGB channels using the standard
// six-sector decomposition. Channel values truncate toward zero rather than
// round. Hue values outside [0, 360) are reduced to a valid sector, so the
// conversion never falls through; results for out-of-range saturation or
// value follow the formulas with no clamping.
func HSVToRGB(c HSV) RGB {
	h := float64(c.Hue) / 60
	i := int(math.Floor(h))
	f := h - float64(i)

	sat := float64(c.Saturation) / 100
	val := float64(c.Value)

	v := channel(val)
	p := channel(val * (1 - sat))
	q := channel(val * (1 - sat*f))
	t := channel(val * (1 - sat*(1-f)))

	switch ((i % 6) + 6) % 6 {
	case 0:
		return RGB{Red: v, Green: t, Blue: p}
	case 1:
		return RGB{Red: q, Green: v, Blue: p}
	case 2:
		return RGB{Red: p, Green: v, Blue: t}
	case 3:
		return RGB{Red: p, Green: q, Blue: v}
	case 4:
		return RGB{Red: t, Green: p, Blue: v}
	default:
		return RGB{Red: v, Green: p, Blue: q}
	}
}

// channel scales a 0-100 component to an 8-bit value, truncating toward zero.
func channel(x float64) int {
	return int(x * 255 / 100)
}

// RGBToHex renders an RGB color as an uppercase "#RRGGBB" string, always
// exactly 7 characters. The 1<<24 bias keeps each channel zero-padded to two
// hex digits; the leading digit it contributes is dropped.
func RGBToHex(c RGB) string {
	n := 1<<24 + c.Red<<16 + c.Green<<8 + c.Blue
	return "#" + strings.ToUpper(strconv.FormatInt(int64(n), 16)[1:])
}

// SetColor converts a hue angle to a hex color string using the default
// saturation (50) and value (90), overridable with WithSaturation and
// WithValue.
func SetColor(hue int, opts ...Option) string {
	cfg := newConfig(opts)
	return hexColor(hue, cfg.saturation, cfg.value)
}

// RandomColor returns a hex color string with a random hue in [1, 359] and
// the same saturation/value handling as SetColor. It is non-deterministic by
// design and safe for concurrent use.
func RandomColor(opts ...Option) string {
	cfg := newConfig(opts)
	return hexColor(randomHue(), cfg.saturation, cfg.value)
}

// hexColor pipes a hue/saturation/value triple through the RGB conversion
// and hex encoding stages.
func hexColor(hue, saturation, value int) string {
	return RGBToHex(HSVToRGB(HSV{Hue: hue, Saturation: saturation, Value: value}))
}

func randomHue() int {
	mu.Lock()
	defer mu.Unlock()
	return rnd.Intn(359) + 1
}
