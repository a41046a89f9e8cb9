package filter

import (
	"github.com/amishk599/jobhunter/internal/model"
)

// Ensure the filters implement model.JobFilter.
var (
	_ model.JobFilter = RemoteFilter{}
	_ model.JobFilter = AcceptAll{}
)

// RemoteFilter keeps jobs flagged as remote. It is a pure predicate over
// IsRemote, so applying it twice changes nothing.
type RemoteFilter struct{}

// Match returns true if the job is remote.
func (RemoteFilter) Match(job model.Job) bool {
	return job.IsRemote
}

// AcceptAll keeps every job.
type AcceptAll struct{}

func (AcceptAll) Match(model.Job) bool { return true }

// ForRequest picks the filter for a request's remoteOnly flag.
func ForRequest(remoteOnly bool) model.JobFilter {
	if remoteOnly {
		return RemoteFilter{}
	}
	return AcceptAll{}
}

// Apply returns the jobs that f matches, preserving order. The result is
// never nil.
func Apply(f model.JobFilter, jobs []model.Job) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Match(j) {
			out = append(out, j)
		}
	}
	return out
}
