package main

import (
	"bytes"
	"os"
	"os/signal"
	"syscall"

	"github.com/maja42/cembed"
	"github.com/maja42/cembed/internal/config"
	"github.com/maja42/cembed/internal/preview"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the array of a generated header over HTTP",
		Long: "serve parses a generated header and serves the embedded bytes on \"/\" the way\n" +
			"the firmware does, with Content-Encoding set for pre-compressed pages.\n" +
			"The header text itself is available on \"/header.h\".",
		Args: cobra.NoArgs,
		RunE: a.runServe,
	}

	flags := cmd.Flags()
	flags.String(config.KeyHeader, "", "Header to serve (defaults to --output)")
	flags.String(config.KeyAddr, ":8080", "Listen address")
	flags.String(config.KeyContentType, "text/html", "Content-Type of the embedded data")
	flags.String(config.KeyContentEncoding, "gzip", "Content-Encoding of the embedded data (empty to omit)")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	path := a.cfg.HeaderPath()
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read header %q", path)
	}
	h, err := cembed.Parse(bytes.NewReader(src))
	if err != nil {
		return errors.Wrapf(err, "header %q", path)
	}

	a.logger.WithFields(logrus.Fields{
		"header": path,
		"name":   h.Name(),
		"bytes":  h.Len(),
	}).Info("Loaded header")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := preview.New(a.cfg.Preview.Addr, preview.Asset{
		Data:            h.Bytes(),
		Source:          src,
		ContentType:     a.cfg.Preview.ContentType,
		ContentEncoding: a.cfg.Preview.ContentEncoding,
	}, a.logger)
	return s.Run(ctx)
}
