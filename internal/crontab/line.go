// Package crontab models a user crontab as ordered lines and reads/writes it
// through the system crontab utility or a plain file.
package crontab

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aatumaykin/cronsetup/internal/constants"
)

// Kind classifies a crontab line.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindEnv
	KindJob
	// KindInvalid is anything cron itself would reject. Kept verbatim.
	KindInvalid
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindEnv:
		return "env"
	case KindJob:
		return "job"
	default:
		return "invalid"
	}
}

// Line is one crontab line. Raw is written back untouched.
type Line struct {
	Raw      string
	Kind     Kind
	Schedule string // job lines only
	Command  string // job lines only
}

var envLine = regexp.MustCompile(`^\s*[A-Za-z_][A-Za-z0-9_]*\s*=`)

// ParseLine classifies raw and, for job lines, splits schedule and command.
func ParseLine(raw string) Line {
	line := Line{Raw: raw}
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		line.Kind = KindBlank
	case strings.HasPrefix(trimmed, "#"):
		line.Kind = KindComment
	case envLine.MatchString(trimmed):
		line.Kind = KindEnv
	default:
		n := 5
		if strings.HasPrefix(trimmed, "@") {
			n = 1
		}
		schedule, command, ok := splitFields(trimmed, n)
		if !ok {
			line.Kind = KindInvalid
			return line
		}
		line.Kind = KindJob
		line.Schedule = schedule
		line.Command = command
	}

	return line
}

// NewJob builds a job line from a schedule and a command.
func NewJob(schedule, command string) Line {
	return Line{
		Raw:      schedule + " " + command,
		Kind:     KindJob,
		Schedule: schedule,
		Command:  command,
	}
}

// Tag returns the marker comment placed above job name of the given project.
func Tag(project, name string) Line {
	return Line{Raw: constants.TagPrefix + project + ":" + name, Kind: KindComment}
}

// TagName reports the project and job name carried by a marker comment.
// The job name follows the last colon, so project ids may contain colons.
// A tag without a project part yields an empty project.
func (l Line) TagName() (project, name string, ok bool) {
	if l.Kind != KindComment {
		return "", "", false
	}
	rest, ok := strings.CutPrefix(strings.TrimSpace(l.Raw), constants.TagPrefix)
	if !ok {
		return "", "", false
	}
	if i := strings.LastIndex(rest, ":"); i >= 0 {
		project, name = strings.TrimSpace(rest[:i]), rest[i+1:]
	} else {
		name = rest
	}
	name = strings.TrimSpace(name)
	return project, name, name != ""
}

// References reports whether path appears as a word of the job's command.
// Comments and environment lines never reference anything.
func (l Line) References(path string) bool {
	if l.Kind != KindJob || path == "" {
		return false
	}
	want := filepath.Clean(path)
	for _, word := range commandWords(l.Command) {
		word = strings.Trim(word, ";&|()")
		if word == "" {
			continue
		}
		if word == path || filepath.Clean(word) == want {
			return true
		}
	}
	return false
}

func commandWords(command string) []string {
	words, err := shellquote.Split(command)
	if err != nil {
		return strings.Fields(command)
	}
	return words
}

// splitFields cuts the first n whitespace-separated fields off s and returns
// them joined by single spaces plus the untouched remainder.
func splitFields(s string, n int) (string, string, bool) {
	fields := make([]string, 0, n)
	rest := s
	for i := 0; i < n; i++ {
		rest = strings.TrimLeft(rest, " \t")
		end := strings.IndexAny(rest, " \t")
		if end <= 0 {
			return "", "", false
		}
		fields = append(fields, rest[:end])
		rest = rest[end:]
	}
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" {
		return "", "", false
	}
	return strings.Join(fields, " "), rest, true
}
