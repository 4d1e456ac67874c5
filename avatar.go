package avatar

import (
	"encoding/base64"
	"fmt"
)

// ContentType is the MIME type of the generated avatar markup.
const ContentType = "image/svg+xml"

const (
	// defaultSize is the avatar side length in pixels used when no size is
	// specified.
	defaultSize = 100

	// defaultName replaces an empty name before hashing and initial
	// extraction. Note the space: the extractor sees two words, while its own
	// internal fallback for unparseable input is the spaceless "VK".
	defaultName = "V K"

	// greyHex is the fixed background used for the "grey" color literal.
	greyHex = "#c3c3c3"
)

// The closing </circle> on both templates is deliberate: existing consumers
// parse this exact markup shape, rect output included, so the tag stays
// mismatched for compatibility.
const (
	circleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="%v" height="%v"><circle cx="%v" cy="%v" r="%v" stroke="white" stroke-width="4" fill="%v"/><text x="50%%" y="67%%" text-anchor="middle" style="font-size:%vpx;font-family:sans-serif;fill:white">%v</text></circle></svg>`
	rectSVG   = `<svg xmlns="http://www.w3.org/2000/svg" width="%v" height="%v"><rect width="%v" height="%v" style="fill:%v"/><text x="50%%" y="65%%" text-anchor="middle" style="font-size:%vpx;font-family:sans-serif;fill:white">%v</text></circle></svg>`
)

// Generate renders an SVG avatar for the given name. The same name with the
// same options always yields identical markup, unless the random color is
// requested. An empty name is substituted with "V K" before any derivation,
// so Generate("") equals Generate("V K").
//
// Any input is accepted: there are no error conditions, and out-of-range
// option values produce whatever the arithmetic yields rather than failing.
func Generate(name string, opts ...Option) string {
	cfg := newConfig(opts)
	if name == "" {
		name = defaultName
	}

	bg := cfg.background(name)
	fontSize := cfg.size / 2.4
	initial := Initial(name)

	if cfg.shape == ShapeRect {
		return fmt.Sprintf(rectSVG, cfg.size, cfg.size, cfg.size, cfg.size, bg, fontSize, initial)
	}

	diameter := cfg.size / 2
	return fmt.Sprintf(circleSVG, cfg.size, cfg.size, diameter, diameter, diameter, bg, fontSize, initial)
}

// GenerateDataURI renders the avatar and wraps it in a base64 data URI that
// can be used directly as an <img> src value:
//
//	<img src="{{.Avatar}}">
func GenerateDataURI(name string, opts ...Option) string {
	svg := Generate(name, opts...)
	return fmt.Sprintf("data:%s;base64,%s", ContentType, base64.StdEncoding.EncodeToString([]byte(svg)))
}

// background resolves the avatar background color for the given name.
func (c *config) background(name string) string {
	switch c.color {
	case ColorGrey:
		return greyHex
	case ColorBlack:
		return "black"
	case ColorRandom:
		return hexColor(randomHue(), c.saturation, c.value)
	case "":
		return hexColor(minihash(name), c.saturation, c.value)
	default:
		// Raw CSS color pass-through, no validation.
		return c.color
	}
}
