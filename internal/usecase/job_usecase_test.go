package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hirehub/internal/domain/job"
	"hirehub/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	byID map[uuid.UUID]job.Job

	created []job.Job
	results []job.Job
	total   int

	lastFilter repository.JobSearchFilter
	lastLimit  int
	lastOffset int

	statusUpdates map[uuid.UUID]string

	searchErr error
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{
		byID:          map[uuid.UUID]job.Job{},
		statusUpdates: map[uuid.UUID]string{},
	}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) error {
	m.created = append(m.created, j)
	m.byID[j.ID] = j
	return nil
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	j, ok := m.byID[id]
	if !ok {
		return job.ErrNotFound
	}
	j.Status = status
	m.byID[id] = j
	m.statusUpdates[id] = status
	return nil
}

func (m *mockJobRepo) Search(_ context.Context, f repository.JobSearchFilter, limit, offset int) ([]job.Job, error) {
	m.lastFilter = f
	m.lastLimit = limit
	m.lastOffset = offset
	return m.results, m.searchErr
}

func (m *mockJobRepo) Count(context.Context, repository.JobSearchFilter) (int, error) {
	return m.total, nil
}

func (m *mockJobRepo) ListRecent(_ context.Context, limit int) ([]job.Job, error) {
	if limit < len(m.results) {
		return m.results[:limit], nil
	}
	return m.results, nil
}

type mockCache struct {
	gets    int
	sets    int
	deletes []string
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	return false, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any) error {
	m.sets++
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletes = append(m.deletes, pattern)
	return nil
}

func validCreateInput() CreateJobInput {
	return CreateJobInput{
		Title:        "Backend Engineer",
		Description:  "Build services",
		Location:     "Jakarta",
		Requirements: "Go experience",
		Skills:       []string{"Go", " PostgreSQL "},
		Salary:       "Rp 20.000.000",
		Type:         "Full-time",
		Experience:   "2-5",
	}
}

func TestJob_Create_Success(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, nil, nil)

	created, err := uc.Create(context.Background(), uuid.New(), validCreateInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != job.StatusActive {
		t.Fatalf("expected new job active, got %q", created.Status)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
	if !reflect.DeepEqual(repo.created[0].Skills, []string{"Go", "PostgreSQL"}) {
		t.Fatalf("expected trimmed skills, got %v", repo.created[0].Skills)
	}
}

func TestJob_Create_DefaultsType(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobUsecase(repo, nil, nil)

	in := validCreateInput()
	in.Type = ""
	if _, err := uc.Create(context.Background(), uuid.New(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.created[0].Type != "Full-time" {
		t.Fatalf("expected Full-time default, got %q", repo.created[0].Type)
	}
}

func TestJob_Create_InvalidExperience(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), nil, nil)

	in := validCreateInput()
	in.Experience = "plenty"
	if _, err := uc.Create(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidExperience) {
		t.Fatalf("expected ErrInvalidExperience, got %v", err)
	}
}

func TestJob_Create_MissingFields(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), nil, nil)

	in := validCreateInput()
	in.Title = "  "
	if _, err := uc.Create(context.Background(), uuid.New(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJob_Create_InvalidatesSearchCache(t *testing.T) {
	repo := newMockJobRepo()
	c := &mockCache{}
	uc := NewJobUsecase(repo, c, nil)

	if _, err := uc.Create(context.Background(), uuid.New(), validCreateInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(c.deletes) != 1 {
		t.Fatalf("expected one cache invalidation, got %d", len(c.deletes))
	}
}

func TestResolveExperienceBucket(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"entry-level", []string{"Fresher", "0", "0-1", "1"}},
		{"Fresher", []string{"Fresher", "0", "0-1", "1"}},
		{"Mid-Level", []string{"2-5", "3-5", "5"}},
		{"senior-level", []string{"5-10", "10+", "15+"}},
		{"7-9", []string{"7-9"}},
		{"", nil},
	}
	for _, tc := range cases {
		got := resolveExperienceBucket(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("bucket %q: expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestJob_Search_NormalizesPaginationAndResolvesBucket(t *testing.T) {
	repo := newMockJobRepo()
	repo.total = 25
	uc := NewJobUsecase(repo, nil, nil)

	result, err := uc.Search(context.Background(), JobSearchParams{
		Experience: "senior-level",
		Page:       -1,
		Limit:      0,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastLimit != 10 || repo.lastOffset != 0 {
		t.Fatalf("expected default paging, got limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}
	if !reflect.DeepEqual(repo.lastFilter.Experience, []string{"5-10", "10+", "15+"}) {
		t.Fatalf("unexpected experience filter: %v", repo.lastFilter.Experience)
	}
	if result.Meta.Total != 25 || result.Meta.TotalPages != 3 {
		t.Fatalf("unexpected meta: %+v", result.Meta)
	}
	if !result.Meta.HasNextPage || result.Meta.HasPrevPage {
		t.Fatalf("unexpected nav flags: %+v", result.Meta)
	}
}

func TestJob_Search_StoresResultInCache(t *testing.T) {
	repo := newMockJobRepo()
	c := &mockCache{}
	uc := NewJobUsecase(repo, c, nil)

	if _, err := uc.Search(context.Background(), JobSearchParams{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.gets != 1 || c.sets != 1 {
		t.Fatalf("expected one get and one set, got gets=%d sets=%d", c.gets, c.sets)
	}
}

func TestJob_UpdateStatus_OwnershipAndTransitions(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	jobID := uuid.New()

	repo := newMockJobRepo()
	repo.byID[jobID] = job.Job{ID: jobID, EmployerID: owner, Status: job.StatusActive}
	uc := NewJobUsecase(repo, nil, nil)

	if _, err := uc.UpdateStatus(context.Background(), stranger, jobID.String(), job.StatusClosed); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := uc.UpdateStatus(context.Background(), owner, jobID.String(), job.StatusFilled)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != job.StatusFilled {
		t.Fatalf("expected filled, got %q", updated.Status)
	}

	// filled is terminal
	if _, err := uc.UpdateStatus(context.Background(), owner, jobID.String(), job.StatusClosed); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestJob_UpdateStatus_BadInputs(t *testing.T) {
	uc := NewJobUsecase(newMockJobRepo(), nil, nil)

	if _, err := uc.UpdateStatus(context.Background(), uuid.New(), "not-a-uuid", job.StatusClosed); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := uc.UpdateStatus(context.Background(), uuid.New(), uuid.NewString(), "archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := uc.UpdateStatus(context.Background(), uuid.New(), uuid.NewString(), job.StatusClosed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobsSearchCacheKey_Stable(t *testing.T) {
	a := jobsSearchCacheKey(JobSearchParams{Title: "  Backend  Engineer ", Page: 1, Limit: 10})
	b := jobsSearchCacheKey(JobSearchParams{Title: "backend engineer", Page: 1, Limit: 10})
	if a != b {
		t.Fatalf("expected normalized params to share a key")
	}

	c := jobsSearchCacheKey(JobSearchParams{Title: "backend engineer", Page: 2, Limit: 10})
	if a == c {
		t.Fatalf("expected different pages to use different keys")
	}
}
