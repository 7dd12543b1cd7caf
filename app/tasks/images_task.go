package tasks

import (
	"context"
	"log/slog"
)

type ImagesTask struct {
	Task
	renderer ImageRenderer
}

func NewImagesTask(date string, renderer ImageRenderer) *ImagesTask {
	return &ImagesTask{
		Task:     NewTask(TaskTypeImages, date),
		renderer: renderer,
	}
}

func (t *ImagesTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	written, err := t.renderer.Run(ctx)
	if err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "Images",
		"date", t.Date,
		"duration", t.GetDuration(),
		"rendered", len(written))

	return nil
}
