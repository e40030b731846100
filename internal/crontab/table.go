package crontab

import (
	"slices"
	"strings"
)

// Table is a crontab as an ordered list of lines.
type Table struct {
	lines []Line
}

// Parse splits content into lines. A missing trailing newline is tolerated.
func Parse(content string) *Table {
	t := &Table{}
	if content == "" {
		return t
	}
	content = strings.TrimSuffix(content, "\n")
	for _, raw := range strings.Split(content, "\n") {
		t.lines = append(t.lines, ParseLine(raw))
	}
	return t
}

// Len returns the number of lines.
func (t *Table) Len() int {
	return len(t.lines)
}

// Append adds lines at the end.
func (t *Table) Append(lines ...Line) {
	t.lines = append(t.lines, lines...)
}

// String renders the table. Non-empty output always ends with a newline,
// cron ignores a final line without one.
func (t *Table) String() string {
	if len(t.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range t.lines {
		b.WriteString(l.Raw)
		b.WriteByte('\n')
	}
	return b.String()
}

// Jobs returns the job lines in order.
func (t *Table) Jobs() []Line {
	var jobs []Line
	for _, l := range t.lines {
		if l.Kind == KindJob {
			jobs = append(jobs, l)
		}
	}
	return jobs
}

// Matcher selects managed entries.
type Matcher struct {
	// Scripts are absolute script paths; a job referencing one is managed.
	Scripts []string
	// Project identifies this installation in entry tags.
	Project string
	// Names are job names; a job under a tag carrying Project and one of
	// Names is managed wherever it points.
	Names []string
	// Substring drops any line whose text contains a script path,
	// comments included.
	Substring bool
}

// owns reports whether l is a tag placed by this project for one of its jobs.
func (m Matcher) owns(l Line) bool {
	project, name, ok := l.TagName()
	return ok && project == m.Project && slices.Contains(m.Names, name)
}

func (m Matcher) matches(l Line) bool {
	for _, script := range m.Scripts {
		if m.Substring {
			if script != "" && strings.Contains(l.Raw, script) {
				return true
			}
			continue
		}
		if l.References(script) {
			return true
		}
	}
	return false
}

// Prune removes managed entries and their tags, keeping every other line in
// its original order. It returns the removed job lines.
func (t *Table) Prune(m Matcher) []Line {
	var removed []Line
	kept := make([]Line, 0, len(t.lines))

	for i := 0; i < len(t.lines); i++ {
		l := t.lines[i]

		if m.owns(l) {
			if i+1 < len(t.lines) && t.lines[i+1].Kind == KindJob {
				removed = append(removed, t.lines[i+1])
				i++
			}
			continue
		}

		if !m.matches(l) {
			kept = append(kept, l)
			continue
		}

		if l.Kind == KindJob {
			removed = append(removed, l)
		}
		// Our own tag left dangling above a removed job goes too.
		if n := len(kept); n > 0 && m.owns(kept[n-1]) {
			kept = kept[:n-1]
		}
	}

	t.lines = kept
	return removed
}

// Lookup returns the job lines tagged with project and name or referencing script.
func (t *Table) Lookup(project, name, script string) []Line {
	var found []Line
	for i, l := range t.lines {
		if l.Kind != KindJob {
			continue
		}
		tagged := false
		if i > 0 {
			if p, n, ok := t.lines[i-1].TagName(); ok && p == project && n == name {
				tagged = true
			}
		}
		if tagged || l.References(script) {
			found = append(found, l)
		}
	}
	return found
}
