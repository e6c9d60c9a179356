package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/service/task"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]string{"alice"})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123")
	names, err := c.Assignees(context.Background())
	if err != nil {
		t.Fatalf("assignees: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if len(names) != 1 || names[0] != "alice" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestClientSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Task name, assignees, due date, and task type are required."})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok123")
	_, err := c.CreateTask(context.Background(), task.Input{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Task name, assignees, due date, and task type are required." {
		t.Fatalf("unexpected message %q", apiErr.Message)
	}
}
