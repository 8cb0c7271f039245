package braille

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

type colorKind uint8

const (
	kindNone colorKind = iota
	kindANSI
	kindRGB
)

// Color is the optional color of a cell: absent, one of the 16 ANSI
// foreground colors, or a 24-bit RGB value. The zero value is NoColor.
// Colors are comparable with ==.
type Color struct {
	kind    colorKind
	code    uint8 // SGR foreground code, kindANSI only
	r, g, b uint8
}

// NoColor leaves a cell uncolored.
var NoColor = Color{}

// ANSI foreground colors.
var (
	Black   = ansiColor(30)
	Red     = ansiColor(31)
	Green   = ansiColor(32)
	Yellow  = ansiColor(33)
	Blue    = ansiColor(34)
	Magenta = ansiColor(35)
	Cyan    = ansiColor(36)
	White   = ansiColor(37)

	BrightBlack   = ansiColor(90)
	BrightRed     = ansiColor(91)
	BrightGreen   = ansiColor(92)
	BrightYellow  = ansiColor(93)
	BrightBlue    = ansiColor(94)
	BrightMagenta = ansiColor(95)
	BrightCyan    = ansiColor(96)
	BrightWhite   = ansiColor(97)
)

var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"gray":           BrightBlack,
	"grey":           BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

func ansiColor(code uint8) Color {
	return Color{kind: kindANSI, code: code}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// FromColorful converts a go-colorful color, clamping it into the RGB gamut.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// Hex parses "#rrggbb" or "#rgb".
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return NoColor, errors.Wrapf(err, "invalid hex color %q", s)
	}
	return FromColorful(c), nil
}

// ParseColor accepts an ANSI color name ("red", "bright-cyan", "gray"), a hex
// value, or "none"/"" for NoColor.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "" || name == "none" || name == "default":
		return NoColor, nil
	case strings.HasPrefix(name, "#"):
		return Hex(name)
	}
	if c, ok := colorNames[strings.ReplaceAll(name, "_", "-")]; ok {
		return c, nil
	}
	return NoColor, errors.Errorf("unknown color %q", s)
}

// IsSet reports whether c is a color rather than NoColor.
func (c Color) IsSet() bool {
	return c.kind != kindNone
}

func (c Color) String() string {
	switch c.kind {
	case kindNone:
		return "none"
	case kindANSI:
		for name, v := range colorNames {
			if v == c && name != "gray" && name != "grey" {
				return name
			}
		}
		return fmt.Sprintf("ansi(%d)", c.code)
	case kindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "invalid"
}
