package utils

import (
	"time"

	"github.com/sirupsen/logrus"
)

// OperationTimer tracks execution time for the phases of one request
type OperationTimer struct {
	Name      string
	StartTime time.Time
	FetchTime time.Duration
	TotalTime time.Duration
	Log       *logrus.Logger
	now       func() time.Time
}

// NewOperationTimer creates a new timer with the given name
func NewOperationTimer(name string, log *logrus.Logger) *OperationTimer {
	return newOperationTimer(name, log, time.Now)
}

func newOperationTimer(name string, log *logrus.Logger, now func() time.Time) *OperationTimer {
	return &OperationTimer{
		Name:      name,
		StartTime: now(),
		Log:       log,
		now:       now,
	}
}

// StartFetch marks the beginning of the upstream call
func (t *OperationTimer) StartFetch() time.Time {
	return t.now()
}

// EndFetch records the duration of the upstream call started at start
func (t *OperationTimer) EndFetch(start time.Time) time.Duration {
	t.FetchTime = t.now().Sub(start)
	t.logTiming("Fetch", t.FetchTime)
	return t.FetchTime
}

// End marks the completion of the entire operation and logs total time
func (t *OperationTimer) End(fields logrus.Fields) {
	t.TotalTime = t.now().Sub(t.StartTime)

	entry := t.Log.WithFields(logrus.Fields{
		"operation":  t.Name,
		"fetch_time": t.FetchTime.String(),
		"total_time": t.TotalTime.String(),
		"ms":         t.TotalTime.Milliseconds(),
	})
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Info("Operation completed")
}

func (t *OperationTimer) logTiming(phase string, duration time.Duration) {
	t.Log.WithFields(logrus.Fields{
		"operation": t.Name,
		"phase":     phase,
		"duration":  duration.String(),
		"ms":        duration.Milliseconds(),
	}).Debug("Timing information")
}
