package avatar_test

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/avatar"
)

func TestGenerateDefaults(t *testing.T) {
	svg := avatar.Generate("John Smith")

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">`))
	assert.Contains(t, svg, `<circle cx="50" cy="50" r="50" stroke="white" stroke-width="4"`)
	// Hash-derived background: "John Smith" hashes to hue 42.
	assert.Contains(t, svg, `fill="`+avatar.SetColor(42)+`"`)
	assert.Contains(t, svg, `>JS</text>`)
	assert.Contains(t, svg, `y="67%"`)
	assert.True(t, strings.HasSuffix(svg, `</circle></svg>`))
}

func TestGenerateDeterminism(t *testing.T) {
	first := avatar.Generate("sujiwo tedjo", avatar.WithShape(avatar.ShapeRect), avatar.WithSize(64))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, avatar.Generate("sujiwo tedjo", avatar.WithShape(avatar.ShapeRect), avatar.WithSize(64)))
	}
}

func TestGenerateEmptyName(t *testing.T) {
	assert.Equal(t, avatar.Generate("V K"), avatar.Generate(""))
	assert.Contains(t, avatar.Generate(""), `>VK</text>`)
}

func TestGenerateRect(t *testing.T) {
	size := 64.0
	svg := avatar.Generate("sujiwo tedjo", avatar.WithShape(avatar.ShapeRect), avatar.WithSize(size))

	assert.Contains(t, svg, `<rect width="64" height="64"`)
	assert.Contains(t, svg, fmt.Sprintf("font-size:%vpx", size/2.4))
	assert.Contains(t, svg, `y="65%"`)
	assert.Contains(t, svg, `>ST</text>`)
	// The closing tag sequence is part of the output contract, rect included.
	assert.True(t, strings.HasSuffix(svg, `</circle></svg>`))
	assert.NotContains(t, svg, "<circle ")
}

func TestGenerateUnknownShapeFallsBackToCircle(t *testing.T) {
	svg := avatar.Generate("John Smith", avatar.WithShape("hexagon"))
	assert.Contains(t, svg, `<circle cx="50" cy="50" r="50"`)
}

func TestGenerateFontSize(t *testing.T) {
	// fontsize is size/2.4 and appears verbatim in the style attribute.
	for _, size := range []float64{100, 64, 48, 250} {
		svg := avatar.Generate("John Smith", avatar.WithSize(size))
		assert.Contains(t, svg, fmt.Sprintf("font-size:%vpx", size/2.4))
		assert.Contains(t, svg, fmt.Sprintf(`r="%v"`, size/2))
	}
}

func TestGenerateColorResolution(t *testing.T) {
	tests := []struct {
		name     string
		opts     []avatar.Option
		expected string
	}{
		{
			name:     "grey literal",
			opts:     []avatar.Option{avatar.WithColor(avatar.ColorGrey)},
			expected: `fill="#c3c3c3"`,
		},
		{
			name:     "black literal",
			opts:     []avatar.Option{avatar.WithColor(avatar.ColorBlack)},
			expected: `fill="black"`,
		},
		{
			name:     "hex passthrough",
			opts:     []avatar.Option{avatar.WithColor("#123456")},
			expected: `fill="#123456"`,
		},
		{
			name:     "named CSS color passthrough",
			opts:     []avatar.Option{avatar.WithColor("rebeccapurple")},
			expected: `fill="rebeccapurple"`,
		},
		{
			name:     "derived color honors saturation and value overrides",
			opts:     []avatar.Option{avatar.WithSaturation(70), avatar.WithValue(80)},
			expected: `fill="` + avatar.SetColor(42, avatar.WithSaturation(70), avatar.WithValue(80)) + `"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, avatar.Generate("John Smith", tt.opts...), tt.expected)
		})
	}
}

func TestGenerateRandomColor(t *testing.T) {
	svg := avatar.Generate("John Smith", avatar.WithColor(avatar.ColorRandom))
	assert.Regexp(t, `fill="#[0-9A-F]{6}"`, svg)
}

func TestGenerateDataURI(t *testing.T) {
	uri := avatar.GenerateDataURI("John Smith")
	require.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	assert.Equal(t, avatar.Generate("John Smith"), string(decoded))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/svg+xml", avatar.ContentType)
}
