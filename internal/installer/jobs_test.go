package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aatumaykin/cronsetup/internal/config"
)

func TestBuildJobs_DefaultCommands(t *testing.T) {
	cfg := config.Default()

	jobs := BuildJobs(cfg.Project, cfg.Jobs, "/srv/land")
	require.Len(t, jobs, 2)

	assert.Equal(t, "0 3 * * * cd /srv/land && /usr/bin/python3 /srv/land/main.py >> /srv/land/logs/cron_execution.log 2>&1", jobs[0].Line().Raw)
	assert.Equal(t, "0 * * * * cd /srv/land && /usr/bin/python3 /srv/land/watchdog.py >> /srv/land/logs/watchdog_cron.log 2>&1", jobs[1].Line().Raw)
	assert.Equal(t, "/srv/land/main.py", jobs[0].Script)
	assert.Equal(t, "/srv/land/logs/watchdog_cron.log", jobs[1].Log)
}

func TestBuildJobs_AnyProjectDir(t *testing.T) {
	cfg := config.Default()

	for _, dir := range []string{"/", "/home/ops/scrapers/mp-land", "/opt/a.b-c_d"} {
		jobs := BuildJobs(cfg.Project, cfg.Jobs, dir)
		line := jobs[0].Line()
		assert.Contains(t, line.Command, "cd "+dir+" && /usr/bin/python3 "+jobs[0].Script)
		assert.Contains(t, line.Command, ">> "+jobs[0].Log+" 2>&1")
		assert.True(t, line.References(jobs[0].Script))
	}
}

func TestBuildJobs_QuotesUnsafePaths(t *testing.T) {
	cfg := config.Default()

	jobs := BuildJobs(cfg.Project, cfg.Jobs, "/home/ops/my scraper")
	assert.Equal(t,
		`cd '/home/ops/my scraper' && /usr/bin/python3 '/home/ops/my scraper/main.py' >> '/home/ops/my scraper/logs/cron_execution.log' 2>&1`,
		jobs[0].Command)
	assert.True(t, jobs[0].Line().References("/home/ops/my scraper/main.py"))
}

func TestBuildJobs_CustomInterpreterAndLogs(t *testing.T) {
	project := config.ProjectConfig{LogsDir: "var/log", Interpreter: "/opt/venv/bin/python"}
	jobs := BuildJobs(project, []config.JobConfig{{Name: "x", Schedule: "@daily", Script: "bin/x.py", Log: "x.log"}}, "/app")

	require.Len(t, jobs, 1)
	assert.Equal(t, "cd /app && /opt/venv/bin/python /app/bin/x.py >> /app/var/log/x.log 2>&1", jobs[0].Command)
	assert.Equal(t, "@daily", jobs[0].Line().Schedule)
}

func TestBuildJobs_EscapesPercent(t *testing.T) {
	cfg := config.Default()

	jobs := BuildJobs(cfg.Project, cfg.Jobs, "/data/100%")
	assert.Equal(t, `cd /data/100\% && /usr/bin/python3 /data/100\%/main.py >> /data/100\%/logs/cron_execution.log 2>&1`, jobs[0].Command)
	assert.True(t, jobs[0].Line().References("/data/100%/main.py"))
}
