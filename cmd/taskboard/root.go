package main

import (
	"os"

	"github.com/spf13/cobra"
)

const profileEnv = "APP_PROFILE"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	profile   string
	configDir string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Personal task board service",
		Long: `taskboard tracks todos across Pending, In Progress and Completed columns,
counts down to due dates, and raises a single overdue alert per deadline.

Running taskboard without a subcommand is the same as "taskboard serve".`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.profile, "profile", os.Getenv(profileEnv),
		"config profile to load from the config dir (env "+profileEnv+")")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"directory containing base.yaml and the profile files")

	root.AddCommand(newServeCommand(opts))
	root.AddCommand(newCheckCommand(opts))
	root.AddCommand(newVersionCommand())

	return root
}
