package internal

import (
	"fmt"
	"io"
)

// BytesPerLine is the number of hex tokens emitted on each line of the array body.
const BytesPerLine = 16

const hexDigits = "0123456789abcdef"

var (
	indent    = []byte("    ")
	separator = []byte(", ")
	lineBreak = []byte(",\n")
)

// ByteWriter renders everything written to it as C hex literals (0x1f, 0x8b, ...)
// into the underlying writer: 16 tokens per indented line, lines joined by ",\n".
// No trailing separator is written after the last token.
type ByteWriter struct {
	w io.Writer
	n int64
	// token is reused to avoid allocations per byte
	token [4]byte
}

// NewByteWriter returns a ByteWriter that writes the array body to w.
func NewByteWriter(w io.Writer) *ByteWriter {
	bw := &ByteWriter{w: w}
	bw.token[0] = '0'
	bw.token[1] = 'x'
	return bw
}

// Write renders p. The returned count refers to the consumed input bytes.
func (b *ByteWriter) Write(p []byte) (int, error) {
	for i, c := range p {
		var lead []byte
		switch {
		case b.n == 0:
			lead = indent
		case b.n%BytesPerLine == 0:
			lead = lineBreak
		default:
			lead = separator
		}
		if _, err := b.w.Write(lead); err != nil {
			return i, err
		}
		if lead[len(lead)-1] == '\n' {
			if _, err := b.w.Write(indent); err != nil {
				return i, err
			}
		}

		b.token[2] = hexDigits[c>>4]
		b.token[3] = hexDigits[c&0x0f]
		if _, err := b.w.Write(b.token[:]); err != nil {
			return i, err
		}
		b.n++
	}
	return len(p), nil
}

// Count returns the number of bytes rendered so far.
func (b *ByteWriter) Count() int64 {
	return b.n
}

// WriteOpening writes the array declaration up to and including the opening brace and newline.
func WriteOpening(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "const uint8_t %s[] = {\n", name)
	return err
}

// WriteClosing closes the array literal and declares the length constant.
// No newline follows the length constant.
func WriteClosing(w io.Writer, name string, size int64) error {
	_, err := fmt.Fprintf(w, "\n};\nconst size_t %s_len = %d;", name, size)
	return err
}
