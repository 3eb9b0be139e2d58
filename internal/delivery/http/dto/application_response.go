package dto

import (
	"time"

	"hirehub/internal/repository"

	"github.com/google/uuid"
)

// ApplicationResponse is the denormalized application view: related job
// and applicant fields are inlined at read time, never embedded in
// storage.
type ApplicationResponse struct {
	ID         uuid.UUID            `json:"id"`
	Job        ApplicationJob       `json:"job"`
	Applicant  ApplicationApplicant `json:"applicant"`
	AppliedAt  time.Time            `json:"appliedAt"`
	Status     string               `json:"status"`
	ResumeLink string               `json:"resumeLink"`
}

type ApplicationJob struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Company  string    `json:"company,omitempty"`
	Location string    `json:"location,omitempty"`
	Salary   string    `json:"salary,omitempty"`
	Type     string    `json:"type,omitempty"`
}

type ApplicationApplicant struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
}

// NewApplicationResponse carries just the job title and applicant name,
// the shape used for apply confirmations and employer listings.
func NewApplicationResponse(row repository.ApplicationRow) ApplicationResponse {
	return ApplicationResponse{
		ID: row.ID,
		Job: ApplicationJob{
			ID:    row.JobID,
			Title: row.JobTitle,
		},
		Applicant: ApplicationApplicant{
			ID:   row.SeekerID,
			Name: row.SeekerName,
		},
		AppliedAt:  row.AppliedAt,
		Status:     row.Status,
		ResumeLink: row.ResumeURL,
	}
}

// NewSeekerApplicationResponse adds the job fields a seeker's own
// application list shows: company, location, salary and type.
func NewSeekerApplicationResponse(row repository.ApplicationRow) ApplicationResponse {
	resp := NewApplicationResponse(row)
	resp.Job.Company = row.EmployerName
	resp.Job.Location = row.JobLocation
	resp.Job.Salary = row.JobSalary
	resp.Job.Type = row.JobType
	resp.Applicant.Email = row.SeekerEmail
	return resp
}

func NewApplicationResponses(rows []repository.ApplicationRow) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, NewApplicationResponse(row))
	}
	return out
}

func NewSeekerApplicationResponses(rows []repository.ApplicationRow) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, NewSeekerApplicationResponse(row))
	}
	return out
}
