package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/rgoyal/studyhall/internal/authclient"
	"github.com/rgoyal/studyhall/internal/llm"
	"github.com/rgoyal/studyhall/internal/quizgen"
	"github.com/rgoyal/studyhall/internal/store"
)

// fakeAuth is a stand-in auth service that mints sequential ids and
// records rollback calls.
type fakeAuth struct {
	mu        sync.Mutex
	nextID    int
	rollbacks []string
}

func (f *fakeAuth) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /admin/users", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.nextID++
		id := fmt.Sprintf("auth-%d", f.nextID)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]string{"id": id})
	})
	mux.HandleFunc("DELETE /admin/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.rollbacks = append(f.rollbacks, r.PathValue("id"))
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

type testEnv struct {
	server Server
	store  *store.Store
	mock   *llm.MockProvider
	auth   *fakeAuth
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	auth := &fakeAuth{}
	authSrv := httptest.NewServer(auth.handler())
	t.Cleanup(authSrv.Close)

	mock := llm.NewMockProvider()
	srv := NewServer(&Options{
		Addr:           ":0",
		Store:          s,
		Auth:           authclient.New(authSrv.URL, "test-key"),
		Generator:      quizgen.New(mock, quizgen.DefaultConfig()),
		DisableReqLogs: true,
	})

	return &testEnv{server: srv, store: s, mock: mock, auth: auth}
}

func (e *testEnv) do(t *testing.T, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *strings.Reader
	if body == "" {
		rdr = strings.NewReader("")
	} else {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(headerUserID, user)
	}
	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/register", "",
		`{"email":"priya@example.edu","password":"hunter22!","name":"Priya"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	out := decode[map[string]string](t, rec)
	if out["id"] != "auth-1" {
		t.Errorf("id = %q, want auth-1", out["id"])
	}
}

func TestRegister_ValidationFieldMap(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/auth/register", "",
		`{"email":"nope","password":"short"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	out := decode[map[string]map[string]string](t, rec)
	for _, f := range []string{"email", "password"} {
		if out["error"][f] == "" {
			t.Errorf("missing field error for %q: %v", f, out["error"])
		}
	}
}

func TestRegister_RollbackOnProfileFailure(t *testing.T) {
	env := newTestEnv(t)

	body := `{"email":"priya@example.edu","password":"hunter22!"}`
	if rec := env.do(t, http.MethodPost, "/v1/auth/register", "", body); rec.Code != http.StatusCreated {
		t.Fatalf("first register: %d", rec.Code)
	}

	// Same email again: auth service mints a new account, the unique
	// profile row rejects it, and the new account gets rolled back.
	rec := env.do(t, http.MethodPost, "/v1/auth/register", "", body)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("second register status = %d, body = %s", rec.Code, rec.Body)
	}

	out := decode[struct {
		Rollback authclient.RollbackResult `json:"rollback"`
	}](t, rec)
	if !out.Rollback.Success {
		t.Errorf("rollback result = %+v, want success", out.Rollback)
	}
	if len(env.auth.rollbacks) != 1 || env.auth.rollbacks[0] != "auth-2" {
		t.Errorf("rollbacks = %v, want [auth-2]", env.auth.rollbacks)
	}
}

func TestUnauthenticated(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/v1/todos", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func registerUser(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/v1/auth/register", "",
		fmt.Sprintf(`{"email":%q,"password":"hunter22!"}`, email))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", rec.Code, rec.Body)
	}
	return decode[map[string]string](t, rec)["id"]
}

func TestTodoLifecycleAndFeed(t *testing.T) {
	env := newTestEnv(t)
	uid := registerUser(t, env, "sam@example.edu")

	rec := env.do(t, http.MethodPost, "/v1/todos", uid,
		`{"title":"Read Chapter 1","status":"pending","type":"personal"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create todo: %d %s", rec.Code, rec.Body)
	}
	todo := decode[map[string]any](t, rec)
	todoID, _ := todo["id"].(string)
	if todoID == "" {
		t.Fatalf("todo id missing: %v", todo)
	}

	rec = env.do(t, http.MethodPatch, "/v1/todos/"+todoID, uid, `{"status":"completed"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch todo: %d %s", rec.Code, rec.Body)
	}

	rec = env.do(t, http.MethodGet, "/v1/activity", uid, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("feed: %d %s", rec.Code, rec.Body)
	}
	feed := decode[[]map[string]any](t, rec)
	if len(feed) != 2 {
		t.Fatalf("feed = %d entries, want 2: %s", len(feed), rec.Body)
	}
	// Newest first: the completion precedes the creation.
	if text, _ := feed[0]["text"].(string); !strings.HasPrefix(text, `Completed todo "Read Chapter 1"`) {
		t.Errorf("feed[0].text = %q", text)
	}
	if text, _ := feed[1]["text"].(string); !strings.HasPrefix(text, `Created todo "Read Chapter 1"`) {
		t.Errorf("feed[1].text = %q", text)
	}
}

func TestTodoCreate_EmptyTitle(t *testing.T) {
	env := newTestEnv(t)
	uid := registerUser(t, env, "sam@example.edu")

	rec := env.do(t, http.MethodPost, "/v1/todos", uid,
		`{"title":"","status":"pending","type":"personal"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
}

func TestTodo_ForeignTodoForbidden(t *testing.T) {
	env := newTestEnv(t)
	owner := registerUser(t, env, "owner@example.edu")
	other := registerUser(t, env, "other@example.edu")

	rec := env.do(t, http.MethodPost, "/v1/todos", owner,
		`{"title":"Mine","status":"pending","type":"personal"}`)
	todoID := decode[map[string]any](t, rec)["id"].(string)

	rec = env.do(t, http.MethodDelete, "/v1/todos/"+todoID, other, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestGroupJoinConflicts(t *testing.T) {
	env := newTestEnv(t)
	owner := registerUser(t, env, "owner@example.edu")
	joiner := registerUser(t, env, "joiner@example.edu")

	rec := env.do(t, http.MethodPost, "/v1/groups", owner, `{"name":"Algebra Crew"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create group: %d %s", rec.Code, rec.Body)
	}
	groupID := decode[map[string]any](t, rec)["id"].(string)

	if rec = env.do(t, http.MethodPost, "/v1/groups/"+groupID+"/join", joiner, ""); rec.Code != http.StatusOK {
		t.Fatalf("join: %d %s", rec.Code, rec.Body)
	}
	if rec = env.do(t, http.MethodPost, "/v1/groups/"+groupID+"/join", joiner, ""); rec.Code != http.StatusConflict {
		t.Fatalf("rejoin status = %d, want 409", rec.Code)
	}
}

func TestGroupTodos_MembersOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := registerUser(t, env, "owner@example.edu")
	outsider := registerUser(t, env, "outsider@example.edu")

	rec := env.do(t, http.MethodPost, "/v1/groups", owner, `{"name":"Algebra Crew"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create group: %d %s", rec.Code, rec.Body)
	}
	groupID := decode[map[string]any](t, rec)["id"].(string)

	// One shared todo and one personal one; only the shared todo shows
	// up under the group.
	rec = env.do(t, http.MethodPost, "/v1/todos", owner,
		fmt.Sprintf(`{"title":"Review problem set","status":"pending","type":"group","group_id":%q}`, groupID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create group todo: %d %s", rec.Code, rec.Body)
	}
	rec = env.do(t, http.MethodPost, "/v1/todos", owner,
		`{"title":"Laundry","status":"pending","type":"personal"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create personal todo: %d %s", rec.Code, rec.Body)
	}

	rec = env.do(t, http.MethodGet, "/v1/groups/"+groupID+"/todos", owner, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list group todos: %d %s", rec.Code, rec.Body)
	}
	todos := decode[[]map[string]any](t, rec)
	if len(todos) != 1 {
		t.Fatalf("group todos = %d, want 1: %s", len(todos), rec.Body)
	}
	if title, _ := todos[0]["title"].(string); title != "Review problem set" {
		t.Errorf("title = %q", title)
	}

	if rec = env.do(t, http.MethodGet, "/v1/groups/"+groupID+"/todos", outsider, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("outsider status = %d, want 403", rec.Code)
	}
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv(t)
	uid := registerUser(t, env, "leaver@example.edu")

	rec := env.do(t, http.MethodDelete, "/v1/profile", uid, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete account: %d %s", rec.Code, rec.Body)
	}
	out := decode[struct {
		Deleted    bool                      `json:"deleted"`
		AuthDelete authclient.RollbackResult `json:"auth_delete"`
	}](t, rec)
	if !out.Deleted || !out.AuthDelete.Success {
		t.Errorf("response = %+v, want deleted with auth delete success", out)
	}
	if len(env.auth.rollbacks) != 1 || env.auth.rollbacks[0] != uid {
		t.Errorf("auth deletes = %v, want [%s]", env.auth.rollbacks, uid)
	}

	if rec = env.do(t, http.MethodGet, "/v1/profile", uid, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("profile after delete = %d, want 404", rec.Code)
	}
}

func TestGroupCreate_TooSmall(t *testing.T) {
	env := newTestEnv(t)
	uid := registerUser(t, env, "owner@example.edu")

	rec := env.do(t, http.MethodPost, "/v1/groups", uid, `{"name":"AB","max_members":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	out := decode[map[string]map[string]string](t, rec)
	for _, f := range []string{"name", "max_members"} {
		if out["error"][f] == "" {
			t.Errorf("missing field error for %q: %v", f, out["error"])
		}
	}
}

func TestProfileCompletion(t *testing.T) {
	env := newTestEnv(t)
	uid := registerUser(t, env, "priya@example.edu")

	rec := env.do(t, http.MethodGet, "/v1/profile", uid, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get profile: %d %s", rec.Code, rec.Body)
	}
	p := decode[map[string]any](t, rec)
	if got := p["completion_percentage"].(float64); got != 0 {
		t.Errorf("completion = %v, want 0", got)
	}
	if got := p["display_name"].(string); got != "priya" {
		t.Errorf("display_name = %q, want priya", got)
	}

	rec = env.do(t, http.MethodPut, "/v1/profile", uid, `{"name":"Priya","timezone":"Asia/Kolkata"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("put profile: %d %s", rec.Code, rec.Body)
	}
	p = decode[map[string]any](t, rec)
	if got := p["completion_percentage"].(float64); got != 29 {
		t.Errorf("completion = %v, want 29", got)
	}
}

func TestGenerateQuiz(t *testing.T) {
	env := newTestEnv(t)
	uid := registerUser(t, env, "priya@example.edu")

	payload := `{"questions":[{"question":"What absorbs light?","options":["Chlorophyll","Keratin","Hemoglobin","Melanin"],"correct_answer":"Chlorophyll"}]}`
	env.mock.AddResponse(llm.MockResponse{Content: json.RawMessage("```json\n" + payload + "\n```")})

	rec := env.do(t, http.MethodPost, "/v1/quizzes/generate", uid,
		`{"title":"Photosynthesis Notes","content":"Chlorophyll absorbs light. Plants produce glucose."}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("generate: %d %s", rec.Code, rec.Body)
	}

	rec = env.do(t, http.MethodGet, "/v1/quizzes", uid, "")
	quizzes := decode[[]map[string]any](t, rec)
	if len(quizzes) != 1 {
		t.Fatalf("quizzes = %d, want 1", len(quizzes))
	}
}

func TestGenerateQuiz_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t)
	uid := registerUser(t, env, "priya@example.edu")

	env.mock.AddResponse(llm.MockResponse{Err: &llm.ErrEmptyCompletion{Model: "mock"}})

	rec := env.do(t, http.MethodPost, "/v1/quizzes/generate", uid,
		`{"title":"Notes","content":"Some content long enough to pass."}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502: %s", rec.Code, rec.Body)
	}

	// Nothing partial persisted.
	rec = env.do(t, http.MethodGet, "/v1/quizzes", uid, "")
	if quizzes := decode[[]map[string]any](t, rec); len(quizzes) != 0 {
		t.Errorf("quizzes = %d, want 0", len(quizzes))
	}
}
