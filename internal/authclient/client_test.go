package authclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRollback_MissingConfig(t *testing.T) {
	c := New("", "")
	res := c.RollbackUser(context.Background(), "u1")
	if res.Success {
		t.Fatal("Success = true, want false without configuration")
	}
	if res.Error == "" {
		t.Fatal("Error is empty, want a descriptive message")
	}
	if !strings.Contains(res.Error, EnvBaseURL) {
		t.Errorf("Error = %q, want mention of %s", res.Error, EnvBaseURL)
	}
}

func TestRollback_EmptyUserID(t *testing.T) {
	c := New("http://localhost:9", "key")
	res := c.RollbackUser(context.Background(), "")
	if res.Success || res.Error == "" {
		t.Fatalf("result = %+v, want failure without network call", res)
	}
}

func TestRollback_Success(t *testing.T) {
	var gotPath, gotAuth, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "service-key")
	res := c.RollbackUser(context.Background(), "u1")
	if !res.Success {
		t.Fatalf("result = %+v, want success", res)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q, want DELETE", gotMethod)
	}
	if gotPath != "/admin/users/u1" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer service-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
}

func TestRollback_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "user not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, "service-key")
	res := c.RollbackUser(context.Background(), "missing")
	if res.Success {
		t.Fatal("Success = true, want false on 404")
	}
	if !strings.Contains(res.Error, "404") {
		t.Errorf("Error = %q, want status mention", res.Error)
	}
}

func TestCreateUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/admin/users" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "priya@example.edu" {
			t.Errorf("email = %q", body["email"])
		}
		json.NewEncoder(w).Encode(AuthUser{ID: "auth-1", Email: body["email"]})
	}))
	defer srv.Close()

	c := New(srv.URL, "service-key")
	u, err := c.CreateUser(context.Background(), "priya@example.edu", "hunter22!")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID != "auth-1" {
		t.Errorf("id = %q, want auth-1", u.ID)
	}
}

func TestCreateUser_MissingConfig(t *testing.T) {
	c := New("", "key")
	if _, err := c.CreateUser(context.Background(), "a@b.c", "password1"); err == nil {
		t.Fatal("expected error without base URL")
	}
}

func TestCreateUser_NoID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "key")
	if _, err := c.CreateUser(context.Background(), "a@b.c", "password1"); err == nil {
		t.Fatal("expected error when auth service returns no id")
	}
}
