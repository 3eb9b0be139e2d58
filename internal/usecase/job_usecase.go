package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"hirehub/internal/domain/job"
	"hirehub/internal/pkg/pagination"
	"hirehub/internal/repository"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Title        string
	Description  string
	Location     string
	Requirements string
	Skills       []string
	Salary       string
	Type         string
	Experience   string
}

type JobSearchParams struct {
	Title      string
	Location   string
	Type       string
	Search     string
	Experience string
	Skills     []string
	Page       int
	Limit      int
}

type JobSearchResult struct {
	Jobs []job.Job       `json:"jobs"`
	Meta pagination.Meta `json:"pagination"`
}

type JobUsecase interface {
	Create(ctx context.Context, employerID uuid.UUID, in CreateJobInput) (job.Job, error)
	Get(ctx context.Context, rawID string) (job.Job, error)
	Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error)
	Recent(ctx context.Context) ([]job.Job, error)
	UpdateStatus(ctx context.Context, employerID uuid.UUID, rawID, status string) (job.Job, error)
}

// Coarse experience buckets map to the raw values stored on postings.
// Anything outside the table is used verbatim as an exact match.
var experienceBuckets = map[string][]string{
	"entry-level":  {"Fresher", "0", "0-1", "1"},
	"fresher":      {"Fresher", "0", "0-1", "1"},
	"mid-level":    {"2-5", "3-5", "5"},
	"senior-level": {"5-10", "10+", "15+"},
}

func resolveExperienceBucket(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if values, ok := experienceBuckets[strings.ToLower(raw)]; ok {
		return values
	}
	return []string{raw}
}

type Job struct {
	jobs   repository.JobRepository
	cache  SearchCache
	logger *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *Job {
	return &Job{jobs: jobs, cache: cache, logger: logger}
}

func (u *Job) Create(ctx context.Context, employerID uuid.UUID, in CreateJobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	location := strings.TrimSpace(in.Location)
	requirements := strings.TrimSpace(in.Requirements)
	salary := strings.TrimSpace(in.Salary)
	if title == "" || description == "" || location == "" || requirements == "" || salary == "" {
		return job.Job{}, ErrInvalidInput
	}

	skills := trimSkills(in.Skills)
	if len(skills) == 0 {
		return job.Job{}, ErrInvalidInput
	}

	jobType := strings.TrimSpace(in.Type)
	if jobType == "" {
		jobType = "Full-time"
	}
	if !job.ValidType(jobType) {
		return job.Job{}, ErrInvalidInput
	}

	experience := strings.TrimSpace(in.Experience)
	if !job.ValidExperience(experience) {
		return job.Job{}, ErrInvalidExperience
	}

	j := job.Job{
		ID:           uuid.New(),
		EmployerID:   employerID,
		Title:        title,
		Description:  description,
		Location:     location,
		Requirements: requirements,
		Skills:       skills,
		Salary:       salary,
		Type:         jobType,
		Experience:   experience,
		Status:       job.StatusActive,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateSearchCache(ctx)

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	return created, nil
}

func (u *Job) Get(ctx context.Context, rawID string) (job.Job, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return job.Job{}, ErrInvalidID
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Job) Search(ctx context.Context, params JobSearchParams) (JobSearchResult, error) {
	p := pagination.Normalize(params.Page, params.Limit)
	params.Page = p.Page
	params.Limit = p.Limit
	params.Skills = trimSkills(params.Skills)

	cacheKey := jobsSearchCacheKey(params)
	if u.cache != nil {
		var cached JobSearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	filter := repository.JobSearchFilter{
		Title:      params.Title,
		Location:   params.Location,
		Type:       params.Type,
		Skills:     params.Skills,
		Experience: resolveExperienceBucket(params.Experience),
		Search:     params.Search,
	}

	total, err := u.jobs.Count(ctx, filter)
	if err != nil {
		return JobSearchResult{}, ErrInternal
	}

	jobs, err := u.jobs.Search(ctx, filter, p.Limit, p.Offset())
	if err != nil {
		return JobSearchResult{}, ErrInternal
	}

	result := JobSearchResult{Jobs: jobs, Meta: pagination.NewMeta(total, p)}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, result)
	}

	return result, nil
}

func (u *Job) Recent(ctx context.Context) ([]job.Job, error) {
	jobs, err := u.jobs.ListRecent(ctx, 10)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Job) UpdateStatus(ctx context.Context, employerID uuid.UUID, rawID, status string) (job.Job, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return job.Job{}, ErrInvalidID
	}

	status = strings.TrimSpace(status)
	if !job.ValidStatus(status) {
		return job.Job{}, ErrInvalidStatus
	}

	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	if j.EmployerID != employerID {
		return job.Job{}, ErrForbidden
	}
	if !j.CanTransitionTo(status) {
		return job.Job{}, ErrInvalidStatus
	}

	if err := u.jobs.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateSearchCache(ctx)

	j.Status = status
	return j, nil
}

func (u *Job) invalidateSearchCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobsSearchKeyPrefix+"*"); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] Cache invalidation failed: %v", err)
	}
}

func trimSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
