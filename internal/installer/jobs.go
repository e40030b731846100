package installer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/aatumaykin/cronsetup/internal/config"
	"github.com/aatumaykin/cronsetup/internal/crontab"
)

// Job is a managed cron entry with every path made absolute.
type Job struct {
	Name     string `json:"name" yaml:"name"`
	Schedule string `json:"schedule" yaml:"schedule"`
	Script   string `json:"script" yaml:"script"`
	Log      string `json:"log" yaml:"log"`
	Command  string `json:"command" yaml:"command"`
}

// Line returns the crontab line for the job.
func (j Job) Line() crontab.Line {
	return crontab.NewJob(j.Schedule, j.Command)
}

// BuildJobs resolves the configured jobs against projectDir.
func BuildJobs(project config.ProjectConfig, jobs []config.JobConfig, projectDir string) []Job {
	logsDir := filepath.Join(projectDir, project.LogsDir)

	built := make([]Job, 0, len(jobs))
	for _, jc := range jobs {
		job := Job{
			Name:     jc.Name,
			Schedule: jc.Schedule,
			Script:   filepath.Join(projectDir, jc.Script),
			Log:      filepath.Join(logsDir, jc.Log),
		}
		job.Command = buildCommand(projectDir, project.Interpreter, job.Script, job.Log)
		built = append(built, job)
	}
	return built
}

// buildCommand renders `cd DIR && INTERPRETER SCRIPT >> LOG 2>&1`.
// Plain paths come out unquoted. cron turns a bare % into a newline, so it is
// escaped.
func buildCommand(projectDir, interpreter, script, log string) string {
	command := fmt.Sprintf("cd %s && %s %s >> %s 2>&1",
		shellquote.Join(projectDir),
		shellquote.Join(interpreter),
		shellquote.Join(script),
		shellquote.Join(log),
	)
	return strings.ReplaceAll(command, "%", `\%`)
}
