package subtitle

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
)

// RGB is a 24-bit color in conventional red, green, blue order.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
)

var namedColors = map[string]RGB{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
}

// matches the override tag produced by OverrideTag at the start of a text
var leadingColorTag = regexp.MustCompile(`^\{\\c&H[0-9a-fA-F]*&\}`)

// channels in blue, green, red order; each channel is unpadded lower-case
// hex so existing files round-trip byte for byte
func bgrHex(c RGB) string {
	return strconv.FormatUint(uint64(c.B), 16) +
		strconv.FormatUint(uint64(c.G), 16) +
		strconv.FormatUint(uint64(c.R), 16)
}

// StyleColor formats c the way [V4+ Styles] colour columns expect it.
func StyleColor(c RGB) string {
	return "&H" + bgrHex(c)
}

// OverrideTag formats c as an inline {\c&H..&} color directive.
func OverrideTag(c RGB) string {
	return `{\c&H` + bgrHex(c) + "&}"
}

// ParseHexColor accepts "#rrggbb", "rrggbb" or one of the named colors.
func ParseHexColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

func RandomColor(r *rand.Rand) RGB {
	v := r.Uint32()
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// splits a leading color override tag off text
func splitColorTag(text string) (string, string) {
	tag := leadingColorTag.FindString(text)
	return tag, text[len(tag):]
}
