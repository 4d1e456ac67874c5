package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// minihash deterministically maps a string to a hue angle in [0, 359].
// It takes the first 4 characters of the uppercase hex MD5 digest, maps
// each to a small integer, and returns their product modulo 360. MD5 is
// used purely as a stable entropy source, not as a security primitive;
// the result is bit-for-bit reproducible for the same input.
func minihash(text string) int {
	sum := md5.Sum([]byte(text))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))

	product := 1
	for _, c := range digest[:4] {
		product *= hexCharValue(byte(c))
	}
	return product % 360
}

// hexCharValue maps a single uppercase hex character to a non-zero
// multiplicand: decimal digits keep their value except '0', which becomes 1
// so it cannot collapse the product; letters map A→1 through F→6; anything
// unexpected maps to 1.
func hexCharValue(c byte) int {
	switch {
	case c >= '1' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 1
	default:
		return 1
	}
}
