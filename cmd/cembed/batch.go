package main

import (
	"strconv"

	"github.com/maja42/cembed/embedding"
	"github.com/maja42/cembed/internal"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Write all headers listed in a manifest",
		Long: "batch generates one header per manifest entry, in order, and stops at the first failure.\n\n" +
			"Manifest format:\n\n" +
			"  entries:\n" +
			"    - input: web/index.html.gz\n" +
			"      output: main/index_html_gz.h\n" +
			"      name: index_html_gz   # optional",
		Args: cobra.ExactArgs(1),
		RunE: a.runBatch,
	}
}

func (a *app) runBatch(cmd *cobra.Command, args []string) error {
	manifest, err := internal.LoadManifest(args[0])
	if err != nil {
		return errors.Wrapf(err, "load manifest %q", args[0])
	}

	table := tablewriter.NewWriter(a.stdout)
	table.SetHeader([]string{"Name", "Input", "Output", "Bytes"})
	table.SetAutoWrapText(false)

	for _, entry := range manifest.Entries {
		name := entry.ArrayName()
		a.logger.WithFields(logrus.Fields{
			"input":  entry.Input,
			"output": entry.Output,
			"name":   name,
		}).Info("Generating header")

		n, err := embedding.EmbedFile(entry.Input, entry.Output, name, a.logger.Debugf)
		if err != nil {
			return err
		}
		table.Append([]string{name, entry.Input, entry.Output, strconv.FormatInt(n, 10)})
	}

	table.Render()
	return nil
}
