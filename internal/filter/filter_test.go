package filter

import (
	"testing"

	"github.com/amishk599/jobhunter/internal/model"
)

func job(id string, remote bool) model.Job {
	return model.Job{ID: id, IsRemote: remote}
}

func TestForRequest(t *testing.T) {
	tests := []struct {
		name       string
		remoteOnly bool
		job        model.Job
		wantMatch  bool
	}{
		{name: "remote only keeps remote", remoteOnly: true, job: job("a", true), wantMatch: true},
		{name: "remote only drops onsite", remoteOnly: true, job: job("b", false), wantMatch: false},
		{name: "accept all keeps onsite", remoteOnly: false, job: job("c", false), wantMatch: true},
		{name: "accept all keeps remote", remoteOnly: false, job: job("d", true), wantMatch: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForRequest(tt.remoteOnly).Match(tt.job)
			if got != tt.wantMatch {
				t.Errorf("Match() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestApply_PreservesOrder(t *testing.T) {
	in := []model.Job{job("1", true), job("2", false), job("3", true), job("4", true)}

	got := Apply(RemoteFilter{}, in)
	want := []string{"1", "3", "4"}
	if len(got) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	in := []model.Job{job("1", false), job("2", true), job("3", false), job("4", true)}

	once := Apply(RemoteFilter{}, in)
	twice := Apply(RemoteFilter{}, once)
	if len(once) != len(twice) {
		t.Fatalf("once = %d jobs, twice = %d jobs", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("position %d differs: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestApply_EmptyIsNotNil(t *testing.T) {
	got := Apply(RemoteFilter{}, nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
