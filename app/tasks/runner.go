package tasks

import (
	"context"
	"log/slog"
)

// Runner executes the run's tasks sequentially. A failed task is
// retried while its retry count allows, then logged and skipped; the
// run continues with the next stage.
type Runner struct {
	tasks []TaskInterface
}

func NewRunner(tasks ...TaskInterface) *Runner {
	return &Runner{tasks: tasks}
}

func (r *Runner) Run(ctx context.Context) error {
	for _, task := range r.tasks {
		for {
			task.Start()
			err := task.Execute(ctx)
			if err == nil {
				break
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}

			slog.Error("Task failed",
				"type", task.GetType(),
				"task", task.GetID(),
				"error", err.Error())

			if !task.CanRetry() {
				break
			}
			task.IncrementRetryCount()
			slog.Warn("Retrying task",
				"type", task.GetType(),
				"task", task.GetID(),
				"attempt", task.GetRetryCount()+1)
		}
	}
	return nil
}
