// Package schedule implements the due-date arithmetic for recurring care
// tasks. All arithmetic is calendar-day based, not elapsed-duration based:
// adding one day to Jan 31 yields Feb 1 regardless of month length, and
// due-ness is decided at day granularity in the owner's local timezone.
package schedule

import "time"

// NextDue returns the due timestamp after a task with the given recurrence
// interval is completed at done. The day component is added directly and
// normalized by time.Date, so DST transitions and month boundaries behave
// like a wall calendar.
func NextDue(done time.Time, frequencyDays int) time.Time {
	return time.Date(
		done.Year(), done.Month(), done.Day()+frequencyDays,
		done.Hour(), done.Minute(), done.Second(), done.Nanosecond(),
		done.Location(),
	)
}

// DateOnly truncates t to its calendar date, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDue reports whether a task with due timestamp nextDue is due on the
// calendar date of now, i.e. due today or overdue. Time-of-day never
// matters; only the date components are compared.
func IsDue(nextDue, now time.Time) bool {
	return !DateOnly(nextDue).After(DateOnly(now))
}
