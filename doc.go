// Package avatar generates deterministic placeholder avatars as SVG markup
// from arbitrary name strings. The same name always produces the same avatar,
// while different names tend to get visually distinct background colors,
// which makes the package useful for user lists, comment threads, and any UI
// that needs a stable stand-in before a real profile picture exists.
//
// An avatar is built from two derivations that both start at the name:
//
//   • A one- or two-letter uppercase initial extracted from the cleaned
//     name (first letter of the first and last word). Extraction is
//     grapheme-aware, so accented and multi-codepoint letters are treated
//     as single characters.
//   • A background color derived by hashing the name into a hue angle and
//     converting it through HSV to an "#RRGGBB" hex string.
//
// # Architecture
//
// The package is a small pipeline of pure functions, composed by Generate:
//
//   • Initial cleans the name (punctuation, symbols, digits and control
//     characters are stripped) and picks the initial letters.
//   • minihash maps the name to a hue in [0, 359] via the first four
//     characters of its MD5 digest. MD5 here is a stable entropy source,
//     not a security mechanism.
//   • HSVToRGB and RGBToHex form the color pipeline; SetColor and
//     RandomColor are thin compositions of the two.
//   • Generate resolves shape, size and color options and emits the final
//     SVG markup.
//
// There is no persistence, no I/O, and no shared mutable state beyond the
// guarded random source, so every function is safe to call concurrently.
// No function returns an error: empty or unparseable input degrades to fixed
// fallbacks instead of failing.
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/avatar"
//
// Generate an avatar with defaults (100px circle, hash-derived color):
//
//	svg := avatar.Generate("John Smith")
//
// Customise the output with functional options:
//
//	svg := avatar.Generate("John Smith",
//		avatar.WithShape(avatar.ShapeRect),
//		avatar.WithSize(64),
//		avatar.WithColor(avatar.ColorRandom),
//	)
//
// Embed the result directly in an <img> tag:
//
//	src := avatar.GenerateDataURI("John Smith")
//
// # Configuration Options
//
//   • WithColor: ColorGrey, ColorBlack, ColorRandom, or any raw CSS color
//     string used verbatim; unset derives the color from the name hash.
//   • WithShape: ShapeCircle (default) or ShapeRect; unrecognized values
//     fall back to the circle rendering.
//   • WithSize: avatar side length in pixels (default: 100).
//   • WithSaturation, WithValue: HSV components for derived and random
//     colors (defaults: 50 and 90).
//
// # Output Stability
//
// The markup shape, attribute ordering, and the closing tag sequence are
// fixed so generated output stays byte-compatible across releases. Callers
// that cache avatars can key the cache by name and options.
package avatar
