package cembed

import (
	"bytes"
	"io"
	"os"
	"regexp"
	"strconv"
)

var (
	declPattern  = regexp.MustCompile(`const\s+uint8_t\s+([A-Za-z_]\w*)\s*\[\s*\]\s*=\s*\{([^}]*)\}\s*;`)
	lenPattern   = regexp.MustCompile(`const\s+size_t\s+([A-Za-z_]\w*)\s*=\s*(\d+)\s*;`)
	tokenPattern = regexp.MustCompile(`0[xX]([0-9a-fA-F]{2})\b`)
)

// Header is a byte array read back from a generated C header.
type Header struct {
	name string
	data []byte
}

// ParseFile reads the header at path.
func ParseFile(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a header consisting of a uint8_t array declaration and its length constant.
// The declared length must match the number of hex literals in the array.
func Parse(r io.Reader) (*Header, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	decl := declPattern.FindSubmatch(src)
	if decl == nil {
		return nil, newHeaderErr("malformed header (missing array declaration)")
	}
	name := string(decl[1])

	length := lenPattern.FindSubmatch(src)
	if length == nil {
		return nil, newHeaderErr("malformed header (missing length constant)")
	}
	if string(length[1]) != name+"_len" {
		return nil, newHeaderErr("malformed header (length constant names %s, expected %s_len)", length[1], name)
	}
	declared, err := strconv.ParseInt(string(length[2]), 10, 64)
	if err != nil {
		return nil, newHeaderErr("malformed header (invalid length %s)", length[2])
	}

	tokens := tokenPattern.FindAllSubmatch(decl[2], -1)
	data := make([]byte, len(tokens))
	for i, tok := range tokens {
		v, _ := strconv.ParseUint(string(tok[1]), 16, 8) // pattern guarantees two hex digits
		data[i] = byte(v)
	}
	if int64(len(data)) != declared {
		return nil, newHeaderErr("malformed header (declared length %d, found %d bytes)", declared, len(data))
	}

	return &Header{name: name, data: data}, nil
}

// Name returns the identifier of the array.
func (h *Header) Name() string {
	return h.name
}

// Len returns the number of bytes in the array.
func (h *Header) Len() int {
	return len(h.data)
}

// Bytes returns the array content. The slice must not be modified.
func (h *Header) Bytes() []byte {
	return h.data
}

// Reader returns a reader for the array content.
func (h *Header) Reader() *bytes.Reader {
	return bytes.NewReader(h.data)
}
