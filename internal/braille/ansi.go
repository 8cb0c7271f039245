package braille

import (
	"io"
	"strconv"
)

// Sink receives rendered output. *strings.Builder, *bytes.Buffer and
// *bufio.Writer satisfy it.
type Sink interface {
	io.Writer
	io.StringWriter
	WriteRune(r rune) (int, error)
}

const sgrReset = "\x1b[0m"

// sgrANSI holds the escape for every 16-color SGR code so that named colors
// are written without formatting.
var sgrANSI = func() map[uint8]string {
	m := make(map[uint8]string, 16)
	for _, base := range []uint8{30, 90} {
		for code := base; code < base+8; code++ {
			m[code] = "\x1b[" + strconv.Itoa(int(code)) + "m"
		}
	}
	return m
}()

// sgrState tracks the last color emitted so that escapes are only written
// when the color actually changes.
type sgrState struct {
	last Color
	// scratch holds a truecolor escape while it is written; the longest,
	// "\x1b[38;2;255;255;255m", is 19 bytes.
	scratch [24]byte
}

// write emits the escape that selects color as the foreground.
func (s *sgrState) write(w Sink, color Color) error {
	switch color.kind {
	case kindNone:
		_, err := w.WriteString(sgrReset)
		return err
	case kindANSI:
		_, err := w.WriteString(sgrANSI[color.code])
		return err
	case kindRGB:
		b := append(s.scratch[:0], "\x1b[38;2;"...)
		b = strconv.AppendUint(b, uint64(color.r), 10)
		b = append(b, ';')
		b = strconv.AppendUint(b, uint64(color.g), 10)
		b = append(b, ';')
		b = strconv.AppendUint(b, uint64(color.b), 10)
		b = append(b, 'm')
		_, err := w.Write(b)
		return err
	}
	return nil
}

// transition moves to color, writing a set escape, a reset when the new
// cell is uncolored, or nothing when the color is unchanged.
func (s *sgrState) transition(w Sink, color Color) error {
	if color == s.last {
		return nil
	}
	s.last = color
	return s.write(w, color)
}

// endRow resets an active color so it does not bleed past the row.
func (s *sgrState) endRow(w Sink) error {
	if !s.last.IsSet() {
		return nil
	}
	s.last = NoColor
	_, err := w.WriteString(sgrReset)
	return err
}
