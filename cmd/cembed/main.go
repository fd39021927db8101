package main

import (
	"io"
	"os"

	"github.com/maja42/cembed/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v          *viper.Viper
	cfg        *config.Config
	logger     *logrus.Logger
	stdout     io.Writer
	configFile string
}

func newApp(stdout, stderr io.Writer) *app {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return &app{
		v:      config.New(),
		logger: logger,
		stdout: stdout,
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cembed",
		Short: "Embed binary files into C headers as byte arrays",
		Long: "cembed writes a C header declaring the content of a file as a uint8_t array\n" +
			"plus a size_t length constant. Without a subcommand it runs 'generate'.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runGenerate,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (yaml, toml or json)")
	flags.String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	flags.StringP(config.KeyInput, "i", "index.html.gz", "Binary file to embed")
	flags.StringP(config.KeyOutput, "o", "index_html_gz.h", "Header file to write")
	flags.StringP(config.KeyName, "n", "", "Array identifier (derived from the output file if empty)")

	root.AddCommand(
		a.generateCommand(),
		a.verifyCommand(),
		a.batchCommand(),
		a.serveCommand(),
	)
	return root
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, cmd.Flags(), a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.SetLevel(cfg.LogLevel)
	return nil
}

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCommand().Execute(); err != nil {
		a.logger.Fatal(err)
	}
}
