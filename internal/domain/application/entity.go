package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists for job and seeker")
)

type Application struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"job_id"`
	SeekerID       uuid.UUID `json:"seeker_id"`
	Status         string    `json:"status"`
	ResumeURL      string    `json:"resume_url"`
	ResumePublicID string    `json:"resume_public_id,omitempty"`
	AppliedAt      time.Time `json:"applied_at"`
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Only a pending application may be decided; accepted and rejected are final.
func CanTransition(from, to string) bool {
	return from == StatusPending && (to == StatusAccepted || to == StatusRejected)
}
