package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jujuqa/compatctl/internal/scheduler"
)

func newRootCommand() *cobra.Command {
	var opts scheduler.Options

	cmd := &cobra.Command{
		Use:           "compatctl <root-dir>",
		Short:         "Schedule client/server compatibility builds for candidate releases",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Root = args[0]
			opts.Out = cmd.OutOrStdout()

			summary, err := scheduler.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if summary.DryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d builds would be triggered\n", summary.Records)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "triggered %d builds\n", summary.Dispatched)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Schedule all candidates for client-server testing")
	cmd.Flags().StringVar(&opts.Creds.User, "user", "", "Jenkins user (default $JENKINS_USER)")
	cmd.Flags().StringVar(&opts.Creds.Password, "password", "", "Jenkins password (default $JENKINS_PASSWORD)")
	cmd.Flags().StringVar(&opts.Creds.File, "credentials-file", "", "TOML file with user and password keys")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file path")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the matrix without triggering builds")

	return cmd
}
