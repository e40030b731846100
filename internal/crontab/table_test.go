package crontab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	content := "MAILTO=\"\"\n# backups\n0 1 * * * /usr/bin/backup\n\n@reboot /usr/bin/start\n"
	table := Parse(content)

	assert.Equal(t, 5, table.Len())
	assert.Equal(t, content, table.String())
	assert.Len(t, table.Jobs(), 2)
}

func TestParse_MissingTrailingNewline(t *testing.T) {
	table := Parse("0 1 * * * /usr/bin/backup")
	assert.Equal(t, "0 1 * * * /usr/bin/backup\n", table.String())
}

func TestParse_Empty(t *testing.T) {
	table := Parse("")
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, "", table.String())
}

func TestTable_Append(t *testing.T) {
	table := Parse("")
	table.Append(Tag("/srv/app", "scraper"), NewJob("0 3 * * *", "run"))

	assert.Equal(t, "# cronsetup:/srv/app:scraper\n0 3 * * * run\n", table.String())
}

func TestTable_Prune_PreservesUnrelatedOrder(t *testing.T) {
	content := "" +
		"SHELL=/bin/bash\n" +
		"15 * * * * /usr/bin/a\n" +
		"0 3 * * * cd /srv/app && /usr/bin/python3 /srv/app/main.py >> /srv/app/logs/cron_execution.log 2>&1\n" +
		"# keep: /srv/app/main.py is the scraper\n" +
		"30 2 * * * /usr/bin/b\n" +
		"0 * * * * cd /srv/app && /usr/bin/python3 /srv/app/watchdog.py >> /srv/app/logs/watchdog_cron.log 2>&1\n" +
		"45 4 * * 1 /usr/bin/c\n"

	table := Parse(content)
	removed := table.Prune(Matcher{Scripts: []string{"/srv/app/main.py", "/srv/app/watchdog.py"}})

	require.Len(t, removed, 2)
	assert.Equal(t, "" +
		"SHELL=/bin/bash\n" +
		"15 * * * * /usr/bin/a\n" +
		"# keep: /srv/app/main.py is the scraper\n" +
		"30 2 * * * /usr/bin/b\n" +
		"45 4 * * 1 /usr/bin/c\n", table.String())
}

func TestTable_Prune_Substring(t *testing.T) {
	content := "# /srv/app/main.py\n0 3 * * * python3 /srv/app/main.py\n5 5 * * * other\n"

	table := Parse(content)
	removed := table.Prune(Matcher{Scripts: []string{"/srv/app/main.py"}, Substring: true})

	assert.Len(t, removed, 1)
	assert.Equal(t, "5 5 * * * other\n", table.String())
}

func TestTable_Prune_TaggedStaleEntry(t *testing.T) {
	content := "" +
		"1 1 * * * unrelated\n" +
		"# cronsetup:site:scraper\n" +
		"0 3 * * * cd /old/place && /usr/bin/python3 /old/place/main.py\n" +
		"# cronsetup:site:other\n" +
		"2 2 * * * someone-elses-job\n"

	table := Parse(content)
	removed := table.Prune(Matcher{
		Scripts: []string{"/new/place/main.py"},
		Project: "site",
		Names:   []string{"scraper"},
	})

	require.Len(t, removed, 1)
	assert.Contains(t, removed[0].Raw, "/old/place/main.py")
	assert.Equal(t, "" +
		"1 1 * * * unrelated\n" +
		"# cronsetup:site:other\n" +
		"2 2 * * * someone-elses-job\n", table.String())
}

func TestTable_Prune_KeepsOtherProjectsTags(t *testing.T) {
	content := "" +
		"# cronsetup:/srv/a:scraper\n" +
		"0 3 * * * cd /srv/a && /usr/bin/python3 /srv/a/main.py\n" +
		"# cronsetup:/srv/b:scraper\n" +
		"0 3 * * * cd /srv/b && /usr/bin/python3 /srv/b/main.py\n" +
		"# cronsetup:scraper\n" +
		"0 3 * * * cd /srv/c && /usr/bin/python3 /srv/c/main.py\n"

	table := Parse(content)
	removed := table.Prune(Matcher{
		Scripts: []string{"/srv/b/main.py"},
		Project: "/srv/b",
		Names:   []string{"scraper"},
	})

	require.Len(t, removed, 1)
	assert.Contains(t, removed[0].Raw, "/srv/b/main.py")
	assert.Equal(t, "" +
		"# cronsetup:/srv/a:scraper\n" +
		"0 3 * * * cd /srv/a && /usr/bin/python3 /srv/a/main.py\n" +
		"# cronsetup:scraper\n" +
		"0 3 * * * cd /srv/c && /usr/bin/python3 /srv/c/main.py\n", table.String())
}

func TestTable_Prune_UntaggedStaleEntryIsKept(t *testing.T) {
	content := "0 3 * * * cd /old/place && /usr/bin/python3 /old/place/main.py\n"

	table := Parse(content)
	removed := table.Prune(Matcher{
		Scripts: []string{"/new/place/main.py"},
		Project: "/new/place",
		Names:   []string{"scraper"},
	})

	assert.Empty(t, removed)
	assert.Equal(t, content, table.String())
}

func TestTable_Prune_DropsDanglingTag(t *testing.T) {
	content := "# cronsetup:/srv/app:renamed\n0 3 * * * python3 /srv/app/main.py\n"

	table := Parse(content)
	removed := table.Prune(Matcher{
		Scripts: []string{"/srv/app/main.py"},
		Project: "/srv/app",
		Names:   []string{"scraper", "renamed"},
	})

	assert.Len(t, removed, 1)
	assert.Equal(t, "", table.String())
}

func TestTable_Prune_KeepsForeignTagAboveRemovedJob(t *testing.T) {
	content := "" +
		"# cronsetup:/srv/other:scraper\n" +
		"0 3 * * * python3 /srv/app/main.py\n" +
		"# note\n"

	table := Parse(content)
	removed := table.Prune(Matcher{
		Scripts: []string{"/srv/app/main.py"},
		Project: "/srv/app",
		Names:   []string{"scraper"},
	})

	assert.Len(t, removed, 1)
	assert.Equal(t, "# cronsetup:/srv/other:scraper\n# note\n", table.String())
}

func TestTable_Lookup(t *testing.T) {
	content := "" +
		"# cronsetup:site:scraper\n" +
		"0 3 * * * python3 /old/main.py\n" +
		"0 4 * * * python3 /srv/app/main.py\n" +
		"# cronsetup:elsewhere:watchdog\n" +
		"0 * * * * python3 /srv/other/watchdog.py\n" +
		"0 * * * * python3 /srv/app/watchdog.py\n"

	table := Parse(content)

	found := table.Lookup("site", "scraper", "/srv/app/main.py")
	require.Len(t, found, 2)
	assert.Equal(t, "0 3 * * *", found[0].Schedule)
	assert.Equal(t, "0 4 * * *", found[1].Schedule)

	found = table.Lookup("site", "watchdog", "/srv/app/watchdog.py")
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Raw, "/srv/app/watchdog.py")

	assert.Empty(t, table.Lookup("site", "missing", "/srv/app/missing.py"))
}
