package ws

import (
	"encoding/json"
	"time"
)

// ApplicationReceivedEvent is pushed to connected clients when a seeker
// submits an application.
type ApplicationReceivedEvent struct {
	Type          string `json:"type"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	ApplicantName string `json:"applicant_name"`
	Timestamp     string `json:"timestamp"`
}

// Notifier is the slice of the hub the application usecase needs.
type Notifier interface {
	Broadcast(message []byte)
}

func NotifyApplicationReceived(n Notifier, jobID, jobTitle, applicantName string) {
	if n == nil {
		return
	}

	evt := ApplicationReceivedEvent{
		Type:          "application_received",
		JobID:         jobID,
		JobTitle:      jobTitle,
		ApplicantName: applicantName,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.Broadcast(b)
}
