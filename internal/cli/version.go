package cli

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/config"
	"github.com/kbukum/reddish/version"
)

func versionCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if short {
				return a.print(version.GetShortVersion())
			}
			if a.cfg.Output == config.OutputJSON {
				return a.print(version.GetVersionInfo())
			}
			full := version.GetFullVersion()
			if built := version.GetVersionInfo().Built(); built != "" {
				full += ", " + built
			}
			return a.print(full)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only version and commit")
	return cmd
}
