package tasks

import (
	"context"
	"fmt"
	"log/slog"
)

type SocialTask struct {
	Task
	writer    ScriptWriter
	extractor PromptExtractor
	state     *State
}

func NewSocialTask(date string, writer ScriptWriter, extractor PromptExtractor, state *State) *SocialTask {
	return &SocialTask{
		Task:      NewTask(TaskTypeSocial, date),
		writer:    writer,
		extractor: extractor,
		state:     state,
	}
}

func (t *SocialTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.writer.Run(t.state.Videos); err != nil {
		return fmt.Errorf("failed to write social script: %w", err)
	}
	if err := t.extractor.Run(); err != nil {
		return fmt.Errorf("failed to extract image prompts: %w", err)
	}

	slog.Info("Task completed",
		"type", "Social",
		"date", t.Date,
		"duration", t.GetDuration(),
		"videos", len(t.state.Videos))

	return nil
}
