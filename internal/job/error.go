package job

import "errors"

var (
	ErrJobRunning = errors.New("job is already running")
	ErrUnknownJob = errors.New("unknown job")
)
