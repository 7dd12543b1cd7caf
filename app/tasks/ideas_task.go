package tasks

import (
	"context"
	"log/slog"
)

type IdeasTask struct {
	Task
	exporter IdeasExporter
}

func NewIdeasTask(date string, exporter IdeasExporter) *IdeasTask {
	return &IdeasTask{
		Task:     NewTask(TaskTypeIdeas, date),
		exporter: exporter,
	}
}

func (t *IdeasTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.exporter.Run(); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "Ideas",
		"date", t.Date,
		"duration", t.GetDuration())

	return nil
}
