package job

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
	StatusFilled = "filled"
)

var ErrNotFound = errors.New("job not found")

type Job struct {
	ID           uuid.UUID `json:"id"`
	EmployerID   uuid.UUID `json:"employer_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Requirements string    `json:"requirements"`
	Skills       []string  `json:"skills"`
	Salary       string    `json:"salary"`
	Type         string    `json:"type"`
	Experience   string    `json:"experience"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Denormalized from the owning employer on reads.
	EmployerName  string `json:"employer_name,omitempty"`
	EmployerEmail string `json:"employer_email,omitempty"`
}

var types = map[string]struct{}{
	"Full-time":  {},
	"Part-time":  {},
	"Contract":   {},
	"Temporary":  {},
	"Internship": {},
}

// Accepted experience values: "Fresher", a plain year count, an "N-M"
// range, or an "N+" open range.
var experienceRe = regexp.MustCompile(`^(Fresher|[0-9]+|[0-9]+-[0-9]+|[0-9]+\+)$`)

func ValidType(t string) bool {
	_, ok := types[t]
	return ok
}

func ValidExperience(exp string) bool {
	return experienceRe.MatchString(exp)
}

func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusClosed || s == StatusFilled
}

// CanTransitionTo reports whether a posting may move to the given status.
// closed and filled are terminal.
func (j Job) CanTransitionTo(status string) bool {
	return j.Status == StatusActive && (status == StatusClosed || status == StatusFilled)
}

func (j Job) AcceptingApplications() bool {
	return j.Status == StatusActive
}
