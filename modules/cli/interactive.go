package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run a menu loop instead of one command per process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runInteractive(a, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// runInteractive loops synchronously over one line of input at a time,
// dispatching each to the same operations the single-shot commands use.
// The loop blocks only at the prompt; errors are printed and the loop
// continues.
func runInteractive(a *app, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "tasktracker interactive mode; type 'help' for commands, 'exit' to quit")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		verb, rest := fields[0], fields[1:]
		if verb == "exit" || verb == "quit" {
			return nil
		}
		if err := a.dispatch(out, verb, rest); err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}

func (a *app) dispatch(out io.Writer, verb string, rest []string) error {
	switch verb {
	case "register":
		if len(rest) != 2 {
			return fmt.Errorf("usage: register <username> <password>")
		}
		return a.runRegister(out, rest[0], rest[1])
	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: login <username> <password>")
		}
		return a.runLogin(out, rest[0], rest[1])
	case "logout":
		return a.runLogout(out)
	case "add":
		return a.runAdd(out, rest)
	case "update":
		if len(rest) < 1 {
			return fmt.Errorf("usage: update <id> [description words...]")
		}
		return a.runUpdate(out, rest[0], rest[1:])
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: delete <id>")
		}
		return a.runDelete(out, rest[0])
	case "status":
		if len(rest) < 1 || len(rest) > 2 {
			return fmt.Errorf("usage: status <id> [todo|in-progress|done]")
		}
		return a.runStatus(out, rest)
	case "mark-in-progress", "progress":
		if len(rest) != 1 {
			return fmt.Errorf("usage: %s <id>", verb)
		}
		return a.runMark(out, rest[0], "in-progress")
	case "mark-done", "done":
		if len(rest) != 1 {
			return fmt.Errorf("usage: %s <id>", verb)
		}
		return a.runMark(out, rest[0], "done")
	case "list":
		if len(rest) > 1 {
			return fmt.Errorf("usage: list [todo|in-progress|done]")
		}
		return a.runList(out, rest)
	case "help":
		printMenu(out)
		return nil
	default:
		return fmt.Errorf("unknown command %q; type 'help' for the menu", verb)
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  register <username> <password>")
	fmt.Fprintln(out, "  login <username> <password>")
	fmt.Fprintln(out, "  logout")
	fmt.Fprintln(out, "  add [description words...]")
	fmt.Fprintln(out, "  update <id> [description words...]")
	fmt.Fprintln(out, "  delete <id>")
	fmt.Fprintln(out, "  status <id> [todo|in-progress|done]")
	fmt.Fprintln(out, "  mark-in-progress <id>")
	fmt.Fprintln(out, "  mark-done <id>")
	fmt.Fprintln(out, "  list [todo|in-progress|done]")
	fmt.Fprintln(out, "  exit")
}
