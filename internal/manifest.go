package internal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v3"
)

// Manifest lists headers that should be generated in one run.
// Entries are processed in the order they appear in the file.
type Manifest struct {
	Entries []Entry `yaml:"entries" validate:"required,min=1,dive"`
}

// Entry describes a single header.
type Entry struct {
	Input  string `yaml:"input" validate:"required"`  // Binary file to embed
	Output string `yaml:"output" validate:"required"` // Header to write
	Name   string `yaml:"name"`                       // Array identifier, derived from Output if empty
}

// ArrayName returns the configured identifier or the one derived from the output path.
func (e Entry) ArrayName() string {
	if e.Name != "" {
		return e.Name
	}
	return ArrayName(e.Output)
}

var validate = validator.New()

// DecodeManifest reads and validates a YAML manifest. Unknown keys are rejected.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode manifest")
	}
	if err := validate.Struct(&m); err != nil {
		return nil, errors.Wrap(err, "invalid manifest")
	}
	return &m, nil
}

// LoadManifest reads the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeManifest(f)
}
