package tasks

import (
	"github.com/hibiken/asynq"
)

const (
	TypeSweepOrphans = "media:sweep_orphans"
)

// NewSweepOrphansTask asks the worker to reclaim audio files on disk that no
// podcast record references.
func NewSweepOrphansTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeSweepOrphans, nil), nil
}
