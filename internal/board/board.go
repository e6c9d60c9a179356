// Package board derives the task-board views: the partition of active tasks
// into overdue and upcoming sets, and the row-highlighting policy by days
// until due. All date comparisons are midnight-normalized in local time.
package board

import (
	"math"
	"sort"
	"time"

	"taskboard/internal/model"
)

type Urgency int

const (
	UrgencyNone Urgency = iota
	UrgencyWarning
	UrgencyCritical
	UrgencyOverdue
)

func (u Urgency) String() string {
	switch u {
	case UrgencyOverdue:
		return "overdue"
	case UrgencyCritical:
		return "critical"
	case UrgencyWarning:
		return "warning"
	default:
		return "none"
	}
}

// ParseDueDate accepts the stored date string, either a plain date or a full
// timestamp.
func ParseDueDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Midnight truncates t to the start of its day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Partition splits tasks by due date against today. A task due strictly
// before today is overdue (input order preserved); a task due today or later
// is upcoming, sorted ascending by due date. Tasks with an unparseable due
// date land in neither set.
func Partition(tasks []model.Task, today time.Time) (overdue, upcoming []model.Task) {
	day := Midnight(today)

	for _, t := range tasks {
		due, err := ParseDueDate(t.DueDate)
		if err != nil {
			continue
		}
		if Midnight(due).Before(day) {
			overdue = append(overdue, t)
		} else {
			upcoming = append(upcoming, t)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		a, _ := ParseDueDate(upcoming[i].DueDate)
		b, _ := ParseDueDate(upcoming[j].DueDate)
		return a.Before(b)
	})

	return overdue, upcoming
}

// DaysUntil returns the number of whole days from today (midnight) to the
// due date (midnight). Due today is 0, due tomorrow is 1, overdue is
// negative.
func DaysUntil(dueDate string, today time.Time) (int, error) {
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return 0, err
	}
	diff := Midnight(due).Sub(Midnight(today))
	// Rounding absorbs the 23h/25h days around DST transitions.
	return int(math.Round(diff.Hours() / 24)), nil
}

// UrgencyFor buckets a days-until-due value: past due, within one day,
// within three days, or nothing to highlight.
func UrgencyFor(days int) Urgency {
	switch {
	case days < 0:
		return UrgencyOverdue
	case days <= 1:
		return UrgencyCritical
	case days <= 3:
		return UrgencyWarning
	default:
		return UrgencyNone
	}
}
