package embedding

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/maja42/cembed/internal"
	"github.com/pkg/errors"
)

// PrintlnFunc is used for logging the embedding progress.
type PrintlnFunc func(format string, args ...interface{})

// Embed writes a C header declaring the content of in as a byte array.
//
// out receives the header text:
//
//	const uint8_t <name>[] = {
//	    0x1f, 0x8b, 0x08, ...
//	};
//	const size_t <name>_len = <size>;
//
// The content is treated as opaque bytes. name is used verbatim as C identifier.
//
// logger (optional) is used to report the progress during embedding.
//
// Returns the number of embedded bytes.
func Embed(out io.Writer, in io.Reader, name string, logger PrintlnFunc) (int64, error) {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}

	if err := internal.WriteOpening(out, name); err != nil {
		return 0, errors.Wrap(err, "write declaration")
	}

	bw := internal.NewByteWriter(out)
	if _, err := io.Copy(bw, in); err != nil {
		return bw.Count(), errors.Wrap(err, "write array")
	}
	logger("Wrote %d bytes as %q", bw.Count(), name)

	if err := internal.WriteClosing(out, name, bw.Count()); err != nil {
		return bw.Count(), errors.Wrap(err, "write length")
	}
	return bw.Count(), nil
}

// Format returns the header text for data.
func Format(data []byte, name string) []byte {
	var buf bytes.Buffer
	// writes to a bytes.Buffer cannot fail
	_, _ = Embed(&buf, bytes.NewReader(data), name, nil)
	return buf.Bytes()
}

// EmbedFile reads the file at inputPath and writes the header to outputPath,
// replacing any existing file. If name is empty, it is derived from outputPath.
//
// The input file is read completely before the output is created.
// A failed write may leave an incomplete output file behind.
//
// See Embed for more information.
func EmbedFile(inputPath, outputPath, name string, logger PrintlnFunc) (int64, error) {
	if logger == nil {
		logger = func(string, ...interface{}) {}
	}
	if name == "" {
		name = internal.ArrayName(outputPath)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, errors.Wrapf(err, "read input %q", inputPath)
	}
	logger("Read %q (%d bytes)", inputPath, len(data))

	file, err := os.Create(outputPath)
	if err != nil {
		return 0, errors.Wrapf(err, "write output %q", outputPath)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	n, err := Embed(w, bytes.NewReader(data), name, logger)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		return n, errors.Wrapf(err, "write output %q", outputPath)
	}
	if err := file.Close(); err != nil {
		return n, errors.Wrapf(err, "write output %q", outputPath)
	}
	return n, nil
}
