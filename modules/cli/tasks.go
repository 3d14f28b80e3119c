package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/nadhirdhanu/task-tracker-cli/domain/task"
)

var addCmd = &cobra.Command{
	Use:   "add [description words...]",
	Short: "Create a task in status todo",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runAdd(cmd.OutOrStdout(), args)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> [description words...]",
	Short: "Replace a task's description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runUpdate(cmd.OutOrStdout(), args[0], args[1:])
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runDelete(cmd.OutOrStdout(), args[0])
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <id> [todo|in-progress|done]",
	Short: "Show a task's status, or set it when a value is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runStatus(cmd.OutOrStdout(), args)
	},
}

var markInProgressCmd = &cobra.Command{
	Use:     "mark-in-progress <id>",
	Aliases: []string{"progress"},
	Short:   "Move a task to in-progress",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runMark(cmd.OutOrStdout(), args[0], domain.StatusInProgress)
	},
}

var markDoneCmd = &cobra.Command{
	Use:     "mark-done <id>",
	Aliases: []string{"done"},
	Short:   "Move a task to done",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runMark(cmd.OutOrStdout(), args[0], domain.StatusDone)
	},
}

var listCmd = &cobra.Command{
	Use:   "list [todo|in-progress|done]",
	Short: "Print tasks, optionally narrowed to one status",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return a.runList(cmd.OutOrStdout(), args)
	},
}

func (a *app) runAdd(out io.Writer, words []string) error {
	actor, err := a.actor()
	if err != nil {
		return err
	}
	t, err := a.tasks.Create(strings.Join(words, " "), actor)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Task %d added: %s\n", t.ID, t.Description)
	return nil
}

func (a *app) runUpdate(out io.Writer, idArg string, words []string) error {
	actor, err := a.actor()
	if err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}
	t, err := a.tasks.Update(id, strings.Join(words, " "), actor)
	if err != nil {
		return renderTaskErr(err, id)
	}
	fmt.Fprintf(out, "Task %d updated: %s\n", t.ID, t.Description)
	return nil
}

func (a *app) runDelete(out io.Writer, idArg string) error {
	actor, err := a.actor()
	if err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}
	t, err := a.tasks.Delete(id, actor)
	if err != nil {
		return renderTaskErr(err, id)
	}
	fmt.Fprintf(out, "Task %d deleted: %s\n", t.ID, t.Description)
	return nil
}

func (a *app) runStatus(out io.Writer, args []string) error {
	actor, err := a.actor()
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		t, err := a.tasks.Get(id, actor)
		if err != nil {
			return renderTaskErr(err, id)
		}
		fmt.Fprintf(out, "Task %d is %s\n", t.ID, t.Status)
		return nil
	}
	t, err := a.tasks.SetStatus(id, domain.Status(args[1]), actor)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return fmt.Errorf("invalid status %q (expected todo, in-progress or done)", args[1])
		}
		return renderTaskErr(err, id)
	}
	fmt.Fprintf(out, "Task %d is now %s\n", t.ID, t.Status)
	return nil
}

func (a *app) runMark(out io.Writer, idArg string, status domain.Status) error {
	actor, err := a.actor()
	if err != nil {
		return err
	}
	id, err := parseID(idArg)
	if err != nil {
		return err
	}
	t, err := a.tasks.SetStatus(id, status, actor)
	if err != nil {
		return renderTaskErr(err, id)
	}
	fmt.Fprintf(out, "Task %d is now %s\n", t.ID, t.Status)
	return nil
}

func (a *app) runList(out io.Writer, args []string) error {
	actor, err := a.actor()
	if err != nil {
		return err
	}
	var filter domain.Status
	if len(args) == 1 {
		filter = domain.Status(args[0])
	}
	tasks, err := a.tasks.List(actor, filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return fmt.Errorf("invalid status %q (expected todo, in-progress or done)", args[0])
		}
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found")
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintf(out, "%d. [%s] %s\n", t.ID, t.Status, t.Description)
	}
	return nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

// renderTaskErr collapses not-found and not-owner into one message so a
// caller cannot probe which ids belong to other users.
func renderTaskErr(err error, id int64) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNotOwner) {
		return fmt.Errorf("task %d not found", id)
	}
	return err
}
