package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dbelyaev/taskvault/internal/client/models"
)

// resetConfirmation must be typed verbatim before the destructive wipe runs.
const resetConfirmation = "ERASE"

// Add prompts for the task text and category and appends the task.
func (a *App) Add(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Enter task text", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Enter category (school/work/personal)", os.Stdout)
	if err != nil {
		return err
	}

	task, err := a.tasks.Add(ctx, text, models.TaskCategory(category))
	if err != nil {
		a.notifyErr(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Added task %d", task.ID))
	return nil
}

// List renders the logged-in user's tasks grouped by category, ordered by
// status priority within each group.
func (a *App) List(ctx context.Context) error {
	grouped, err := a.tasks.Grouped(ctx)
	if err != nil {
		a.notifyErr(ctx, err)
		return err
	}

	empty := true
	for _, category := range models.Categories() {
		tasks := grouped[category]
		if len(tasks) == 0 {
			continue
		}
		empty = false
		printlnFn(string(category) + ":")
		for _, t := range tasks {
			printlnFn(fmt.Sprintf("  [%s] %d %s", t.Status, t.ID, t.Text))
		}
	}
	if empty {
		printlnFn("No tasks yet.")
	}
	return nil
}

// SetStatus prompts for a task id and a new status and applies it.
func (a *App) SetStatus(ctx context.Context) error {
	id, err := a.promptID("Enter task id")
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Enter status (incomplete/in-progress/complete)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.tasks.UpdateStatus(ctx, id, models.TaskStatus(status)); err != nil {
		a.notifyErr(ctx, err)
		return err
	}
	return nil
}

// Toggle prompts for a task id and cycles it to the next status.
func (a *App) Toggle(ctx context.Context) error {
	id, err := a.promptID("Enter task id")
	if err != nil {
		return err
	}

	if err := a.tasks.Toggle(ctx, id); err != nil {
		a.notifyErr(ctx, err)
		return err
	}
	return nil
}

// Delete prompts for a task id and removes it. An absent id is a no-op.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter task id to delete")
	if err != nil {
		return err
	}

	if err := a.tasks.Remove(ctx, id); err != nil {
		a.notifyErr(ctx, err)
		return err
	}
	return nil
}

// Reset destructively wipes the whole store (users, tasks, session). It is
// gated behind typing the confirmation phrase.
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader,
		fmt.Sprintf("This erases ALL accounts and tasks. Type %s to continue", resetConfirmation), os.Stdout)
	if err != nil {
		return err
	}
	if answer != resetConfirmation {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.users.ClearAll(ctx); err != nil {
		a.notifyErr(ctx, err)
		return err
	}
	a.session = models.Session{}
	printlnFn("Store erased.")
	return nil
}

func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		printlnFn("Error: task id must be a number")
		return 0, err
	}
	return id, nil
}
