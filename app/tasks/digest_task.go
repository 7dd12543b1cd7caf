package tasks

import (
	"context"
	"log/slog"
)

type DigestTask struct {
	Task
	collector VideoCollector
	channels  []string
	state     *State
}

func NewDigestTask(date string, collector VideoCollector, channels []string, state *State) *DigestTask {
	return &DigestTask{
		Task:      NewTask(TaskTypeDigest, date),
		collector: collector,
		channels:  channels,
		state:     state,
	}
}

func (t *DigestTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.state.Videos = t.collector.Run(ctx, t.channels)

	slog.Info("Task completed",
		"type", "Digest",
		"date", t.Date,
		"duration", t.GetDuration(),
		"channels", len(t.channels),
		"videos", len(t.state.Videos))

	return nil
}
