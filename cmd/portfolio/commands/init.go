package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	portfolio "github.com/goliatone/go-portfolio"
)

func initCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <dir>",
		Short: "Write the starter site (index.html and data/*.json) into dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := portfolio.WriteSite(args[0], force)
			if err != nil {
				return err
			}
			for _, path := range written {
				opts.logger.Printf("wrote %s", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "starter site ready in %s (%d files written)\n", args[0], len(written))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}
