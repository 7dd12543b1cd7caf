package tasks

import (
	"context"
	"fmt"
	"testing"

	"github.com/fplradar/radar/app/feed"
)

type fakeTask struct {
	Task
	fail     int
	executed int
	order    *[]TaskType
}

func newFakeTask(taskType TaskType, fail int, order *[]TaskType) *fakeTask {
	return &fakeTask{
		Task:  NewTask(taskType, "2025-03-14"),
		fail:  fail,
		order: order,
	}
}

func (t *fakeTask) Execute(_ context.Context) error {
	t.executed++
	*t.order = append(*t.order, t.Type)
	if t.executed <= t.fail {
		return fmt.Errorf("boom")
	}
	return nil
}

func TestRunnerExecutesInOrder(t *testing.T) {
	var order []TaskType
	runner := NewRunner(
		newFakeTask(TaskTypeDigest, 0, &order),
		newFakeTask(TaskTypeSocial, 0, &order),
		newFakeTask(TaskTypeReport, 0, &order),
	)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []TaskType{TaskTypeDigest, TaskTypeSocial, TaskTypeReport}
	if len(order) != len(want) {
		t.Fatalf("expected %d executions, got %v", len(want), order)
	}
	for i, taskType := range want {
		if order[i] != taskType {
			t.Errorf("expected %s at position %d, got %s", taskType, i, order[i])
		}
	}
}

func TestRunnerRetriesThenContinues(t *testing.T) {
	var order []TaskType
	failing := newFakeTask(TaskTypeImages, 5, &order)
	next := newFakeTask(TaskTypeReport, 0, &order)

	runner := NewRunner(failing, next)
	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("a failed task should not abort the run: %v", err)
	}

	if failing.executed != DefaultMaxRetries+1 {
		t.Errorf("expected %d attempts, got %d", DefaultMaxRetries+1, failing.executed)
	}
	if next.executed != 1 {
		t.Error("expected the run to continue past the failed task")
	}
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var order []TaskType
	first := newFakeTask(TaskTypeDigest, 0, &order)

	runner := NewRunner(first)
	if err := runner.Run(ctx); err == nil {
		t.Fatal("expected cancelled context error")
	}
}

func TestDigestAndSocialShareState(t *testing.T) {
	state := &State{}
	videos := []feed.Video{
		{ID: "vid001", Title: "GW29 Wildcard draft"},
		{ID: "vid002", Title: "Captaincy picks"},
	}

	digest := NewDigestTask("2025-03-14", collectorFunc(func(_ context.Context, _ []string) []feed.Video {
		return videos
	}), []string{"UC1"}, state)

	var scripted []feed.Video
	social := NewSocialTask("2025-03-14", scriptWriterFunc(func(v []feed.Video) error {
		scripted = v
		return nil
	}), extractorFunc(func() error { return nil }), state)

	runner := NewRunner(digest, social)
	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scripted) != 2 || scripted[0].ID != "vid001" {
		t.Errorf("expected collected videos to reach the social stage, got %v", scripted)
	}
}

func TestSocialTaskScriptFailureSkipsExtraction(t *testing.T) {
	state := &State{}
	extracted := false

	social := NewSocialTask("2025-03-14", scriptWriterFunc(func(_ []feed.Video) error {
		return fmt.Errorf("disk full")
	}), extractorFunc(func() error {
		extracted = true
		return nil
	}), state)

	if err := social.Execute(context.Background()); err == nil {
		t.Fatal("expected script failure to surface")
	}
	if extracted {
		t.Error("extraction should not run after a script failure")
	}
}

type collectorFunc func(ctx context.Context, channelIDs []string) []feed.Video

func (f collectorFunc) Run(ctx context.Context, channelIDs []string) []feed.Video {
	return f(ctx, channelIDs)
}

type scriptWriterFunc func(videos []feed.Video) error

func (f scriptWriterFunc) Run(videos []feed.Video) error {
	return f(videos)
}

type extractorFunc func() error

func (f extractorFunc) Run() error {
	return f()
}
