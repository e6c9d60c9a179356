package model

import "time"

// TaskAssignee tracks one person's progress on a task.
type TaskAssignee struct {
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	Comment     string     `json:"comment,omitempty"`
}

// Task is the persisted task record. IDs are the creation time in unix
// milliseconds. Deleted tasks stay on disk with IsDeleted set.
type Task struct {
	ID        int64          `json:"id"`
	TaskName  string         `json:"taskName"`
	DueDate   string         `json:"dueDate"`
	TaskType  string         `json:"taskType"`
	Assignees []TaskAssignee `json:"assignees"`
	IsDeleted bool           `json:"isDeleted"`
}

// Assignee returns the sub-record for name, or nil if the task does not
// reference that person.
func (t *Task) Assignee(name string) *TaskAssignee {
	for i := range t.Assignees {
		if t.Assignees[i].Name == name {
			return &t.Assignees[i]
		}
	}
	return nil
}
