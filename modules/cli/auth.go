package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runRegister(cmd.OutOrStdout(), args[0], args[1])
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Start a session as the given user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runLogin(cmd.OutOrStdout(), args[0], args[1])
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runLogout(cmd.OutOrStdout())
	},
}

func (a *app) runRegister(out io.Writer, username, password string) error {
	if err := a.requireAuthMode(); err != nil {
		return err
	}
	u, err := a.identity.Register(username, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Registered %s\n", u.Username)
	return nil
}

func (a *app) runLogin(out io.Writer, username, password string) error {
	if err := a.requireAuthMode(); err != nil {
		return err
	}
	u, err := a.identity.Authenticate(username, password)
	if err != nil {
		return err
	}
	if err := a.sessions.Start(u.Username); err != nil {
		return err
	}
	fmt.Fprintf(out, "Logged in as %s\n", u.Username)
	return nil
}

func (a *app) runLogout(out io.Writer) error {
	if err := a.requireAuthMode(); err != nil {
		return err
	}
	if err := a.sessions.End(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Logged out")
	return nil
}
