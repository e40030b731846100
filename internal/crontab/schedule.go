package crontab

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Standard five-field expressions plus @daily style descriptors.
var scheduleParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateSchedule checks a cron expression.
func ValidateSchedule(expression string) error {
	if _, err := scheduleParser.Parse(expression); err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}

// NextRun returns the first activation of expression strictly after from.
func NextRun(expression string, from time.Time) (time.Time, error) {
	schedule, err := scheduleParser.Parse(expression)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression: %w", err)
	}
	return schedule.Next(from), nil
}
