package board

import (
	"testing"
	"time"

	"taskboard/internal/model"
)

var today = time.Date(2025, 1, 10, 15, 30, 0, 0, time.Local)

func taskDue(id int64, due string) model.Task {
	return model.Task{ID: id, TaskName: "t", DueDate: due}
}

func TestPartitionDueTodayIsUpcoming(t *testing.T) {
	overdue, upcoming := Partition([]model.Task{taskDue(1, "2025-01-10")}, today)

	if len(overdue) != 0 {
		t.Fatalf("task due today must not be overdue: %v", overdue)
	}
	if len(upcoming) != 1 || upcoming[0].ID != 1 {
		t.Fatalf("expected task in upcoming, got %v", upcoming)
	}
}

func TestPartitionSplitsOnMidnight(t *testing.T) {
	tasks := []model.Task{
		taskDue(1, "2025-01-09"),
		taskDue(2, "2025-01-10"),
		taskDue(3, "2025-01-11"),
	}

	overdue, upcoming := Partition(tasks, today)

	if len(overdue) != 1 || overdue[0].ID != 1 {
		t.Fatalf("expected only task 1 overdue, got %v", overdue)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected tasks 2 and 3 upcoming, got %v", upcoming)
	}
}

func TestPartitionSortsUpcomingAscending(t *testing.T) {
	tasks := []model.Task{
		taskDue(1, "2025-02-01"),
		taskDue(2, "2025-01-12"),
		taskDue(3, "2025-01-20"),
	}

	_, upcoming := Partition(tasks, today)

	if len(upcoming) != 3 || upcoming[0].ID != 2 || upcoming[1].ID != 3 || upcoming[2].ID != 1 {
		t.Fatalf("expected due-date order 2,3,1, got %v", upcoming)
	}
}

func TestPartitionSkipsUnparseableDueDate(t *testing.T) {
	overdue, upcoming := Partition([]model.Task{taskDue(1, "someday")}, today)

	if len(overdue) != 0 || len(upcoming) != 0 {
		t.Fatalf("unparseable due date must land in neither set: %v %v", overdue, upcoming)
	}
}

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		due  string
		want int
	}{
		{"2025-01-08", -2},
		{"2025-01-09", -1},
		{"2025-01-10", 0},
		{"2025-01-11", 1},
		{"2025-01-13", 3},
		{"2025-01-20", 10},
	}

	for _, c := range cases {
		got, err := DaysUntil(c.due, today)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.due, err)
		}
		if got != c.want {
			t.Fatalf("%s: expected %d days, got %d", c.due, c.want, got)
		}
	}
}

func TestUrgencyBuckets(t *testing.T) {
	cases := []struct {
		days int
		want Urgency
	}{
		{-5, UrgencyOverdue},
		{-1, UrgencyOverdue},
		{0, UrgencyCritical},
		{1, UrgencyCritical},
		{2, UrgencyWarning},
		{3, UrgencyWarning},
		{4, UrgencyNone},
		{30, UrgencyNone},
	}

	for _, c := range cases {
		if got := UrgencyFor(c.days); got != c.want {
			t.Fatalf("days=%d: expected %s, got %s", c.days, c.want, got)
		}
	}
}

func TestParseDueDateAcceptsTimestamps(t *testing.T) {
	got, err := ParseDueDate("2025-01-10T09:00:00Z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UTC().Hour() != 9 {
		t.Fatalf("unexpected parse result: %v", got)
	}
}
