// Package api exposes the HTTP surface: registration, profile,
// todos, groups, quizzes, and the activity feed. Request identity is
// taken from the X-User-ID header set by the fronting auth proxy;
// session handling itself lives in the external auth service.
package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rgoyal/studyhall/internal/authclient"
	"github.com/rgoyal/studyhall/internal/quizgen"
	"github.com/rgoyal/studyhall/internal/store"
)

type (
	// Options configures the server.
	Options struct {
		Addr           string
		Store          *store.Store
		Auth           *authclient.Client
		Generator      quizgen.Generator
		FeedLimit      int
		DisableReqLogs bool
	}

	// Server is the HTTP API server.
	Server interface {
		http.Handler
		Start() error
		Stop(ctx context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

// NewServer builds a Server from options.
func NewServer(opts *Options) Server {
	s := &server{opts: opts, app: echo.New()}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(middleware.Recover())
	s.app.HTTPErrorHandler = appHTTPErrorHandler

	s.app.GET("/healthz", s.health)

	v1 := s.app.Group("/v1")
	v1.POST("/auth/register", s.register)

	authed := v1.Group("", requireUser)
	authed.GET("/profile", s.getProfile)
	authed.PUT("/profile", s.updateProfile)
	authed.DELETE("/profile", s.deleteAccount)

	authed.GET("/todos", s.listTodos)
	authed.POST("/todos", s.createTodo)
	authed.PATCH("/todos/:id", s.updateTodo)
	authed.DELETE("/todos/:id", s.deleteTodo)

	authed.GET("/groups", s.listGroups)
	authed.POST("/groups", s.createGroup)
	authed.GET("/groups/:id", s.getGroup)
	authed.POST("/groups/:id/join", s.joinGroup)
	authed.GET("/groups/:id/todos", s.groupTodos)

	authed.GET("/quizzes", s.listQuizzes)
	authed.POST("/quizzes/generate", s.generateQuiz)
	authed.GET("/quizzes/:id", s.getQuiz)

	authed.GET("/activity", s.activityFeed)
}

func (s *server) Start() error {
	return s.app.Start(s.opts.Addr)
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ServeHTTP makes the server usable with httptest.
func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

func (s *server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// feedLimit returns the configured activity feed cap with a sane floor.
func (s *server) feedLimit() int {
	if s.opts.FeedLimit > 0 {
		return s.opts.FeedLimit
	}
	return 20
}
