package main

import (
	"github.com/fatih/color"
	"github.com/maja42/cembed/embedding"
	"github.com/maja42/cembed/internal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) generateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Short:   "Write the header for the input file",
		Example: "cembed generate -i web/index.html.gz -o main/index_html_gz.h",
		Args:    cobra.NoArgs,
		RunE:    a.runGenerate,
	}
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	name := a.cfg.Name
	if name == "" {
		name = internal.ArrayName(a.cfg.Output)
	}

	a.logger.WithFields(logrus.Fields{
		"input":  a.cfg.Input,
		"output": a.cfg.Output,
		"name":   name,
	}).Info("Generating header")

	n, err := embedding.EmbedFile(a.cfg.Input, a.cfg.Output, name, a.logger.Debugf)
	if err != nil {
		return err
	}
	a.logger.WithField("bytes", n).Debug("Header written")

	_, err = color.New(color.FgGreen).Fprintf(a.stdout, "Byte array generated as '%s'.\n", a.cfg.Output)
	return err
}
