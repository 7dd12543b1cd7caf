package tasks

import (
	"context"
	"log/slog"
)

type VoiceTask struct {
	Task
	speaker VoiceOver
}

func NewVoiceTask(date string, speaker VoiceOver) *VoiceTask {
	return &VoiceTask{
		Task:    NewTask(TaskTypeVoice, date),
		speaker: speaker,
	}
}

func (t *VoiceTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.speaker.Run(ctx); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "Voice",
		"date", t.Date,
		"duration", t.GetDuration())

	return nil
}
