package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "tasktracker",
		Short: "Track short personal tasks from the command line",
		Long: `tasktracker keeps a list of short text tasks in flat JSON files.

Tasks move between todo, in-progress and done. With authentication enabled
(auth_enabled in config.yaml or --auth) each task belongs to the user who
created it, and commands require a prior login.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags; empty/unset means "use the config file value"
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding tasks.json, users.json and session.json")
	rootCmd.PersistentFlags().Bool("auth", false, "Require login and scope tasks to the logged-in user")
	rootCmd.PersistentFlags().String("log-level", "", "Log verbosity (debug, info, warn, error)")
}

// Execute runs the root command. Any error has already been rendered to
// stderr; callers only need to exit non-zero.
func Execute(version string) error {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(markInProgressCmd)
	rootCmd.AddCommand(markDoneCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(interactiveCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
