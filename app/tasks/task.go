// Package tasks models the pipeline stages as tasks and runs them in
// order.
package tasks

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

type TaskType string

const (
	TaskTypeDigest TaskType = "digest"
	TaskTypeSocial TaskType = "social"
	TaskTypeImages TaskType = "images"
	TaskTypeVoice  TaskType = "voice"
	TaskTypeIdeas  TaskType = "ideas"
	TaskTypeReport TaskType = "report"
)

const (
	DefaultMaxRetries = 1
)

type TaskInterface interface {
	Execute(ctx context.Context) error
	GetID() string
	GetType() TaskType
	GetDate() string
	GetRetryCount() int
	GetMaxRetries() int
	IncrementRetryCount()
	CanRetry() bool
	Start()
	GetDuration() time.Duration
}

// Task carries the bookkeeping shared by every stage: identity, the
// run date, retry counters and timing.
type Task struct {
	ID         string
	Type       TaskType
	Date       string
	RetryCount int
	MaxRetries int
	StartedAt  *time.Time
}

func (t *Task) GetID() string {
	return t.ID
}

func (t *Task) GetType() TaskType {
	return t.Type
}

func (t *Task) GetDate() string {
	return t.Date
}

func (t *Task) GetRetryCount() int {
	return t.RetryCount
}

func (t *Task) GetMaxRetries() int {
	return t.MaxRetries
}

func (t *Task) IncrementRetryCount() {
	t.RetryCount++
}

func (t *Task) CanRetry() bool {
	return t.RetryCount < t.MaxRetries
}

func (t *Task) Start() {
	now := time.Now()
	t.StartedAt = &now
}

func (t *Task) GetDuration() time.Duration {
	if t.StartedAt == nil {
		return 0
	}
	return time.Since(*t.StartedAt)
}

func NewTask(taskType TaskType, date string) Task {
	uniqueID := fmt.Sprintf("%d-%d", time.Now().UnixNano(), rand.Intn(10000))

	return Task{
		ID:         uniqueID,
		Type:       taskType,
		Date:       date,
		RetryCount: 0,
		MaxRetries: DefaultMaxRetries,
	}
}
