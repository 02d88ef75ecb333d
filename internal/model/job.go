package model

import "time"

// JobName identifies a scheduled state-transition job.
type JobName string

const (
	JobVerification     JobName = "verification"
	JobDisabling        JobName = "disabling"
	JobBannerActivation JobName = "banner-activation"
	JobSwepActivation   JobName = "swep-activation"
)

// JobStats summarises one run of a job.
type JobStats struct {
	Job           JobName   `json:"job"`
	RunID         string    `json:"run_id"`
	StartedAt     time.Time `json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`
	Checked       int       `json:"checked"`
	Transitioned  int       `json:"transitioned"`
	RemindersSent int       `json:"reminders_sent,omitempty"`
	Errors        []string  `json:"errors"`
}

// AddError records a per-record failure.
func (s *JobStats) AddError(msg string) {
	s.Errors = append(s.Errors, msg)
}
