package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/pkg/metrics"
)

var (
	ErrFieldsRequired   = errors.New("Task name, assignees, due date, and task type are required.")
	ErrNotFound         = errors.New("Task not found.")
	ErrAssigneeNotFound = errors.New("Assignee not found.")
)

// UnknownAssigneesError reports every task assignee that is not a registered
// user.
type UnknownAssigneesError struct {
	Names []string
}

func (e *UnknownAssigneesError) Error() string {
	return fmt.Sprintf("The following assignees are not registered users: %s", strings.Join(e.Names, ", "))
}

// ListFilter narrows List results. Deleted selects the soft-deleted set
// instead of the active one; TaskType, when non-empty, keeps only that
// category.
type ListFilter struct {
	TaskType string
	Deleted  bool
}

// Input carries the create/update fields. Assignees is the raw
// comma-separated name string as submitted by the client.
type Input struct {
	TaskName  string `json:"taskName"`
	Assignees string `json:"assignees"`
	DueDate   string `json:"dueDate"`
	TaskType  string `json:"taskType"`
}

type Service struct {
	tasks *repository.TaskRepository
	users *repository.UserRepository
	now   func() time.Time
}

func NewService(tasks *repository.TaskRepository, users *repository.UserRepository) *Service {
	return &Service{
		tasks: tasks,
		users: users,
		now:   time.Now,
	}
}

// List returns tasks with IsDeleted matching the filter, optionally narrowed
// by task type.
func (s *Service) List(ctx context.Context, f ListFilter) ([]model.Task, error) {
	tasks, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}

	out := []model.Task{}
	for _, t := range tasks {
		if t.IsDeleted != f.Deleted {
			continue
		}
		if f.TaskType != "" && t.TaskType != f.TaskType {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Search matches query case-insensitively against the task name or any
// assignee name. An empty query returns the type-filtered set unfiltered by
// text.
func (s *Service) Search(ctx context.Context, query, taskType string) ([]model.Task, error) {
	tasks, err := s.tasks.All(ctx)
	if err != nil {
		return nil, err
	}

	out := []model.Task{}
	q := strings.ToLower(query)
	for _, t := range tasks {
		if taskType != "" && t.TaskType != taskType {
			continue
		}
		if q != "" && !matchesQuery(t, q) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func matchesQuery(t model.Task, q string) bool {
	if strings.Contains(strings.ToLower(t.TaskName), q) {
		return true
	}
	for _, a := range t.Assignees {
		if strings.Contains(strings.ToLower(a.Name), q) {
			return true
		}
	}
	return false
}

// Create validates the input, resolves the assignee string against the user
// directory, and appends the new task. The id is the creation time in unix
// milliseconds.
func (s *Service) Create(ctx context.Context, in Input) (*model.Task, error) {
	if in.TaskName == "" || in.Assignees == "" || in.DueDate == "" || in.TaskType == "" {
		return nil, ErrFieldsRequired
	}

	names := splitAssignees(in.Assignees)
	if err := s.ensureRegistered(ctx, names); err != nil {
		return nil, err
	}

	assignees := make([]model.TaskAssignee, 0, len(names))
	for _, name := range names {
		assignees = append(assignees, model.TaskAssignee{Name: name})
	}

	t := model.Task{
		ID:        s.now().UnixMilli(),
		TaskName:  in.TaskName,
		DueDate:   in.DueDate,
		TaskType:  in.TaskType,
		Assignees: assignees,
	}

	err := s.tasks.Mutate(ctx, func(tasks []model.Task) ([]model.Task, error) {
		return append(tasks, t), nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncTaskMutation("create")
	return &t, nil
}

// Update replaces the editable fields of a task. The assignee list is
// re-resolved against the directory, but completion state and comments are
// preserved for names already on the task; new names start uncompleted.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*model.Task, error) {
	var updated model.Task

	err := s.tasks.Mutate(ctx, func(tasks []model.Task) ([]model.Task, error) {
		idx := findTask(tasks, id)
		if idx < 0 {
			return nil, ErrNotFound
		}

		if in.TaskName == "" || in.Assignees == "" || in.DueDate == "" || in.TaskType == "" {
			return nil, ErrFieldsRequired
		}

		names := splitAssignees(in.Assignees)
		if err := s.ensureRegistered(ctx, names); err != nil {
			return nil, err
		}

		prev := tasks[idx]
		assignees := make([]model.TaskAssignee, 0, len(names))
		for _, name := range names {
			if existing := prev.Assignee(name); existing != nil {
				assignees = append(assignees, *existing)
			} else {
				assignees = append(assignees, model.TaskAssignee{Name: name})
			}
		}

		tasks[idx].TaskName = in.TaskName
		tasks[idx].DueDate = in.DueDate
		tasks[idx].TaskType = in.TaskType
		tasks[idx].Assignees = assignees
		updated = tasks[idx]
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncTaskMutation("update")
	return &updated, nil
}

// SetAssigneeProgress flips one assignee's completed flag, stamping
// completedAt when completing and clearing it when uncompleting. A non-nil
// comment overwrites the stored comment.
func (s *Service) SetAssigneeProgress(ctx context.Context, id int64, assigneeName string, completed bool, comment *string) (*model.Task, error) {
	var updated model.Task

	err := s.tasks.Mutate(ctx, func(tasks []model.Task) ([]model.Task, error) {
		idx := findTask(tasks, id)
		if idx < 0 {
			return nil, ErrNotFound
		}

		a := tasks[idx].Assignee(assigneeName)
		if a == nil {
			return nil, ErrAssigneeNotFound
		}

		a.Completed = completed
		if completed {
			now := s.now()
			a.CompletedAt = &now
		} else {
			a.CompletedAt = nil
		}
		if comment != nil {
			a.Comment = *comment
		}

		updated = tasks[idx]
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncTaskMutation("progress")
	return &updated, nil
}

// SoftDelete flags a task as deleted and returns the updated record. Already
// deleted tasks are flagged again without complaint.
func (s *Service) SoftDelete(ctx context.Context, id int64) (*model.Task, error) {
	var updated model.Task

	err := s.tasks.Mutate(ctx, func(tasks []model.Task) ([]model.Task, error) {
		idx := findTask(tasks, id)
		if idx < 0 {
			return nil, ErrNotFound
		}
		tasks[idx].IsDeleted = true
		updated = tasks[idx]
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncTaskMutation("soft_delete")
	return &updated, nil
}

func (s *Service) ensureRegistered(ctx context.Context, names []string) error {
	users, err := s.users.All(ctx)
	if err != nil {
		return err
	}

	registered := make(map[string]bool, len(users))
	for _, u := range users {
		registered[u.Username] = true
	}

	var unknown []string
	for _, name := range names {
		if !registered[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return &UnknownAssigneesError{Names: unknown}
	}
	return nil
}

func splitAssignees(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.TrimSpace(p))
	}
	return names
}

func findTask(tasks []model.Task, id int64) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
