// Package client is the typed HTTP client for the taskboard API, used by
// taskctl. The bearer token, when set, rides on every request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/service/task"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, username, password string) error {
	body := map[string]string{"username": username, "password": password}
	return c.do(ctx, http.MethodPost, "/api/register", body, nil)
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Assignees lists every registered name.
func (c *Client) Assignees(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.do(ctx, http.MethodGet, "/api/assignees", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// AddAssignee registers a directory entry; password may be empty.
func (c *Client) AddAssignee(ctx context.Context, name, password string) error {
	body := map[string]string{"name": name}
	if password != "" {
		body["password"] = password
	}
	return c.do(ctx, http.MethodPost, "/api/assignees", body, nil)
}

// RemoveAssignee hard-deletes a directory entry.
func (c *Client) RemoveAssignee(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/api/assignees/"+url.PathEscape(name), nil, nil)
}

// Tasks lists tasks, optionally narrowed by type. deleted selects the
// soft-deleted set.
func (c *Client) Tasks(ctx context.Context, taskType string, deleted bool) ([]model.Task, error) {
	q := url.Values{}
	if taskType != "" {
		q.Set("type", taskType)
	}
	if deleted {
		q.Set("deleted", "true")
	}
	path := "/api/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SearchTasks matches query against task and assignee names.
func (c *Client) SearchTasks(ctx context.Context, query, taskType string) ([]model.Task, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if taskType != "" {
		q.Set("type", taskType)
	}

	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks/search?"+q.Encode(), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask submits a new task.
func (c *Client) CreateTask(ctx context.Context, in task.Input) (*model.Task, error) {
	var t model.Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask replaces a task's editable fields.
func (c *Client) UpdateTask(ctx context.Context, id int64, in task.Input) (*model.Task, error) {
	var t model.Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+strconv.FormatInt(id, 10), in, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// SetAssigneeProgress toggles one assignee's completion; a non-nil comment
// replaces the stored comment.
func (c *Client) SetAssigneeProgress(ctx context.Context, id int64, assigneeName string, completed bool, comment *string) (*model.Task, error) {
	body := map[string]any{
		"assigneeName": assigneeName,
		"completed":    completed,
	}
	if comment != nil {
		body["comment"] = *comment
	}

	var t model.Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+strconv.FormatInt(id, 10)+"/assignee", body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTask soft-deletes a task and returns the flagged record.
func (c *Client) DeleteTask(ctx context.Context, id int64) (*model.Task, error) {
	var t model.Task
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+strconv.FormatInt(id, 10), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		var errBody struct {
			Error string `json:"error"`
		}
		msg := string(data)
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
