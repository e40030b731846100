package constants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedulesHaveFiveFields(t *testing.T) {
	for _, schedule := range []string{ScraperSchedule, WatchdogSchedule} {
		assert.Len(t, strings.Fields(schedule), 5, schedule)
	}
}

func TestTagPrefixIsComment(t *testing.T) {
	assert.True(t, strings.HasPrefix(TagPrefix, "#"))
}
