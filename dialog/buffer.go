package dialog

import "unicode/utf16"

// MaxTextLength is the buffer capacity in UTF-16 code units. The edit
// control is read with room for this many units plus the terminator.
const MaxTextLength = 511

// Buffer holds the text committed by the OK button for one session.
type Buffer struct {
	units [MaxTextLength]uint16
	n     int
}

// Commit replaces the buffer contents with text, stopping at the first NUL
// and truncating to MaxTextLength. A high surrogate left without its pair
// by truncation is dropped. Commit returns the number of units stored.
func (b *Buffer) Commit(text []uint16) int {
	b.Reset()

	n := 0
	for n < len(text) && n < MaxTextLength && text[n] != 0 {
		b.units[n] = text[n]
		n++
	}
	if n > 0 && isHighSurrogate(b.units[n-1]) {
		n--
		b.units[n] = 0
	}
	b.n = n
	return n
}

// CommitString is Commit for a Go string.
func (b *Buffer) CommitString(s string) int {
	return b.Commit(utf16.Encode([]rune(s)))
}

// Reset zeroes the buffer.
func (b *Buffer) Reset() {
	b.units = [MaxTextLength]uint16{}
	b.n = 0
}

// Len returns the stored length in UTF-16 code units.
func (b *Buffer) Len() int {
	return b.n
}

func (b *Buffer) String() string {
	return string(utf16.Decode(b.units[:b.n]))
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xd800 && u < 0xdc00
}
