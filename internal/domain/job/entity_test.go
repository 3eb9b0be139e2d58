package job

import "testing"

func TestValidExperience(t *testing.T) {
	valid := []string{"Fresher", "0", "1", "12", "0-1", "5-10", "15+", "10+"}
	for _, v := range valid {
		if !ValidExperience(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}

	invalid := []string{"", "abc", "fresher", "1-", "-5", "+5", "1 - 3", "3+years", "Fresher "}
	for _, v := range invalid {
		if ValidExperience(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestCanTransitionTo(t *testing.T) {
	active := Job{Status: StatusActive}
	if !active.CanTransitionTo(StatusClosed) {
		t.Fatalf("expected active -> closed to be allowed")
	}
	if !active.CanTransitionTo(StatusFilled) {
		t.Fatalf("expected active -> filled to be allowed")
	}
	if active.CanTransitionTo(StatusActive) {
		t.Fatalf("expected active -> active to be rejected")
	}

	for _, terminal := range []string{StatusClosed, StatusFilled} {
		j := Job{Status: terminal}
		for _, target := range []string{StatusActive, StatusClosed, StatusFilled} {
			if j.CanTransitionTo(target) {
				t.Fatalf("expected %s -> %s to be rejected", terminal, target)
			}
		}
	}
}

func TestAcceptingApplications(t *testing.T) {
	if !(Job{Status: StatusActive}).AcceptingApplications() {
		t.Fatalf("expected active job to accept applications")
	}
	if (Job{Status: StatusClosed}).AcceptingApplications() {
		t.Fatalf("expected closed job to reject applications")
	}
	if (Job{Status: StatusFilled}).AcceptingApplications() {
		t.Fatalf("expected filled job to reject applications")
	}
}
