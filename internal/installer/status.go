package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/aatumaykin/cronsetup/internal/crontab"
)

// Status reports whether a configured job is present in the crontab.
type Status struct {
	Job       Job        `json:"job" yaml:"job"`
	Installed bool       `json:"installed" yaml:"installed"`
	Current   bool       `json:"current" yaml:"current"`
	Entries   []string   `json:"entries,omitempty" yaml:"entries,omitempty"`
	NextRun   *time.Time `json:"next_run,omitempty" yaml:"next_run,omitempty"`
}

// Status reads the crontab and reports each configured job.
func (i *Installer) Status(ctx context.Context) ([]Status, error) {
	current, err := i.backend.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read crontab: %w", err)
	}
	table := crontab.Parse(current)
	now := i.now()

	statuses := make([]Status, 0, len(i.jobs))
	for _, job := range i.jobs {
		st := Status{Job: job}
		want := job.Line().Raw
		for _, line := range table.Lookup(i.ProjectID(), job.Name, job.Script) {
			st.Installed = true
			st.Entries = append(st.Entries, line.Raw)
			if line.Raw == want {
				st.Current = true
			}
		}
		if st.Installed {
			if next, err := crontab.NextRun(job.Schedule, now); err == nil {
				st.NextRun = &next
			}
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}
