package commands

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-portfolio/pkg/config"
)

type options struct {
	configPath string
	quiet      bool
	logger     *log.Logger
}

// Execute runs the portfolio command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Bind portfolio JSON data into a static HTML page",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var out io.Writer = cmd.ErrOrStderr()
			if opts.quiet {
				out = io.Discard
			}
			opts.logger = log.New(out, "", log.LstdFlags)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "site config file (JSON or YAML)")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress diagnostics")

	root.AddCommand(renderCmd(opts), serveCmd(opts), initCmd(opts))
	return root
}

// loadConfig reads --config when given and falls back to the defaults.
func (o *options) loadConfig() (config.Config, error) {
	if o.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(o.configPath)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
