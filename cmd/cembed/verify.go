package main

import (
	"bytes"
	"os"

	"github.com/fatih/color"
	"github.com/maja42/cembed"
	"github.com/maja42/cembed/embedding"
	"github.com/maja42/cembed/internal"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the header is up to date with the input file",
		Long: "verify regenerates the header in memory and compares it with the existing file.\n" +
			"It fails if the header is missing, malformed or out of date.",
		Args: cobra.NoArgs,
		RunE: a.runVerify,
	}
}

func (a *app) runVerify(cmd *cobra.Command, _ []string) error {
	name := a.cfg.Name
	if name == "" {
		name = internal.ArrayName(a.cfg.Output)
	}

	data, err := os.ReadFile(a.cfg.Input)
	if err != nil {
		return errors.Wrapf(err, "read input %q", a.cfg.Input)
	}
	existing, err := os.ReadFile(a.cfg.Output)
	if err != nil {
		return errors.Wrapf(err, "read header %q", a.cfg.Output)
	}

	if bytes.Equal(existing, embedding.Format(data, name)) {
		_, err = color.New(color.FgGreen).Fprintf(a.stdout, "'%s' is up to date.\n", a.cfg.Output)
		return err
	}

	h, err := cembed.Parse(bytes.NewReader(existing))
	if err != nil {
		return errors.Wrapf(err, "header %q", a.cfg.Output)
	}
	if h.Name() != name {
		return errors.Errorf("header %q declares %s, expected %s", a.cfg.Output, h.Name(), name)
	}
	if off := firstDifference(h.Bytes(), data); off >= 0 {
		return errors.Errorf("header %q is out of date (%d bytes, input has %d; first difference at offset %d)",
			a.cfg.Output, h.Len(), len(data), off)
	}
	// same content, different layout (edited by hand or by another tool)
	return errors.Errorf("header %q is not formatted as generated", a.cfg.Output)
}

// firstDifference returns the first offset where a and b differ, or -1 if they are equal.
func firstDifference(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}
