package config

import (
	"time"
)

// GetTimeout returns the fetch timeout as time.Duration
func (f *FetchSettings) GetTimeout() time.Duration {
	if f.Timeout <= 0 {
		return 30 * time.Second // default 30 seconds
	}
	return time.Duration(f.Timeout) * time.Second
}

// GetPause returns the per-write courtesy pause as time.Duration
func (f *FetchSettings) GetPause() time.Duration {
	if f.PauseMillis <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(f.PauseMillis) * time.Millisecond
}
