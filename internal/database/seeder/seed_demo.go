package seeder

import (
	"context"

	"hirehub/internal/database"
	"hirehub/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmployerEmail = "employer@hirehub.local"
	demoSeekerEmail   = "seeker@hirehub.local"
	demoPassword      = "password123"
)

// DemoUsersSeeder inserts one employer and one jobseeker for local
// development. Every statement is idempotent so reruns are harmless.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []struct {
		Name  string
		Email string
		Role  string
	}{
		{Name: "Acme Recruiting", Email: demoEmployerEmail, Role: user.RoleEmployer},
		{Name: "Dewi Santoso", Email: demoSeekerEmail, Role: user.RoleJobSeeker},
	}

	for _, u := range users {
		_, err := db.Exec(
			ctx,
			`INSERT INTO users (id, name, email, password_hash, role)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4)
			 ON CONFLICT (email) DO NOTHING`,
			u.Name,
			u.Email,
			string(hash),
			u.Role,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// DemoJobsSeeder inserts a handful of active postings owned by the demo
// employer. Runs after DemoUsersSeeder.
type DemoJobsSeeder struct{}

func (DemoJobsSeeder) Name() string { return "demo_jobs" }

func (DemoJobsSeeder) Run(ctx context.Context, db database.DB) error {
	jobs := []struct {
		Title        string
		Description  string
		Location     string
		Requirements string
		Salary       string
		Type         string
		Experience   string
		Skills       []string
	}{
		{
			Title:        "Backend Engineer",
			Description:  "Build and operate Go services backed by PostgreSQL and Redis.",
			Location:     "Jakarta",
			Requirements: "Production experience with Go and relational databases.",
			Salary:       "Rp 20.000.000 - Rp 30.000.000",
			Type:         "Full-time",
			Experience:   "2-5",
			Skills:       []string{"Go", "PostgreSQL", "Redis"},
		},
		{
			Title:        "Frontend Developer",
			Description:  "Ship accessible React interfaces for the hiring dashboard.",
			Location:     "Remote",
			Requirements: "Solid TypeScript and a portfolio of shipped UI work.",
			Salary:       "Rp 15.000.000 - Rp 25.000.000",
			Type:         "Contract",
			Experience:   "1",
			Skills:       []string{"JavaScript", "TypeScript", "React"},
		},
		{
			Title:        "DevOps Intern",
			Description:  "Assist with CI pipelines and container tooling.",
			Location:     "Bandung",
			Requirements: "Familiarity with Linux and Docker basics.",
			Salary:       "Rp 5.000.000",
			Type:         "Internship",
			Experience:   "Fresher",
			Skills:       []string{"Docker", "Linux"},
		},
	}

	for _, j := range jobs {
		_, err := db.Exec(
			ctx,
			`INSERT INTO jobs (id, employer_id, title, description, location, requirements, salary, type, experience, skills, status)
			 SELECT gen_random_uuid(), u.id, $1, $2, $3, $4, $5, $6, $7, $8, 'active'
			 FROM users u
			 WHERE u.email = $9
			   AND NOT EXISTS (
			     SELECT 1 FROM jobs j WHERE j.title = $1 AND j.employer_id = u.id
			   )`,
			j.Title,
			j.Description,
			j.Location,
			j.Requirements,
			j.Salary,
			j.Type,
			j.Experience,
			j.Skills,
			demoEmployerEmail,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
