package tasks

import (
	"context"
	"log/slog"
)

type ReportTask struct {
	Task
	builder ReportBuilder
}

func NewReportTask(date string, builder ReportBuilder) *ReportTask {
	return &ReportTask{
		Task:    NewTask(TaskTypeReport, date),
		builder: builder,
	}
}

func (t *ReportTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.builder.Run(); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "Report",
		"date", t.Date,
		"duration", t.GetDuration())

	return nil
}
