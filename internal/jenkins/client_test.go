package jenkins

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jujuqa/compatctl/internal/creds"
)

func TestBuildJob(t *testing.T) {
	var gotMethod, gotPath string
	var gotQuery map[string][]string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUser, gotPass, _ = r.BasicAuth()
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, creds.Credentials{User: "jrandom", Password: "hunter2"})

	params := map[string]string{
		"old_version": "1.20.11",
		"candidate":   "1.21-alpha1",
		"new_to_old":  "true",
	}
	if err := client.BuildJob(context.Background(), "compatibility-control", params, "sekrit"); err != nil {
		t.Fatalf("BuildJob: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/job/compatibility-control/buildWithParameters" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotUser != "jrandom" || gotPass != "hunter2" {
		t.Errorf("unexpected basic auth: %s/%s", gotUser, gotPass)
	}

	want := map[string]string{
		"old_version": "1.20.11",
		"candidate":   "1.21-alpha1",
		"new_to_old":  "true",
		"token":       "sekrit",
	}
	for k, v := range want {
		if len(gotQuery[k]) != 1 || gotQuery[k][0] != v {
			t.Errorf("query %s: expected %q, got %v", k, v, gotQuery[k])
		}
	}
}

func TestBuildJobNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("token") {
			t.Error("token param sent without a token")
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, creds.Credentials{User: "u", Password: "p"})
	if err := client.BuildJob(context.Background(), "compatibility-control", nil, ""); err != nil {
		t.Fatalf("BuildJob: %v", err)
	}
}

func TestBuildJobRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Authentication required", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, creds.Credentials{User: "u", Password: "p"})

	err := client.BuildJob(context.Background(), "compatibility-control", nil, "t")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", statusErr.StatusCode)
	}
	if statusErr.Job != "compatibility-control" {
		t.Errorf("unexpected job in error: %s", statusErr.Job)
	}
}

func TestBuildJobServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, creds.Credentials{User: "u", Password: "p"})
	if err := client.BuildJob(context.Background(), "compatibility-control", nil, "t"); err == nil {
		t.Error("expected error for unreachable server")
	}
}
