package store

import (
	"context"
	"errors"
	"time"

	"github.com/rgoyal/studyhall/ent"
	"github.com/rgoyal/studyhall/ent/schema"
	"github.com/rgoyal/studyhall/internal/forms"
)

// Sentinel errors for domain rules the schema can't express.
var (
	ErrGroupFull     = errors.New("group is at member capacity")
	ErrAlreadyMember = errors.New("user is already a group member")
	ErrPrivateGroup  = errors.New("group is not open for joining")
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ActivityEventData captures one entry of a user's activity feed.
type ActivityEventData struct {
	UserID    string
	Kind      string
	TodoTitle string
	Message   string
}

// QuizData captures a generated quiz for persistence.
type QuizData struct {
	UserID        string
	MaterialTitle string
	Model         string
	Questions     []schema.QuizQuestionRow
}

// UserRepo manages profile rows.
type UserRepo interface {
	// Create inserts a profile row for a freshly registered account.
	Create(ctx context.Context, id, email, name string) (*ent.User, error)

	// ByID returns the user, or an ent not-found error.
	ByID(ctx context.Context, id string) (*ent.User, error)

	// ByEmail returns the user, or an ent not-found error.
	ByEmail(ctx context.Context, email string) (*ent.User, error)

	// UpdatePreferences applies the provided preference fields.
	UpdatePreferences(ctx context.Context, id string, in *forms.ProfilePreferencesInput) (*ent.User, error)

	// Delete removes the profile row.
	Delete(ctx context.Context, id string) error
}

// TodoRepo manages todos.
type TodoRepo interface {
	Create(ctx context.Context, userID string, in *forms.TodoCreateInput) (*ent.Todo, error)
	ByID(ctx context.Context, id string) (*ent.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]*ent.Todo, error)
	ListByGroup(ctx context.Context, groupID string) ([]*ent.Todo, error)
	Update(ctx context.Context, id string, in *forms.TodoUpdateInput) (*ent.Todo, error)
	Delete(ctx context.Context, id string) error
}

// GroupRepo manages study groups.
type GroupRepo interface {
	Create(ctx context.Context, ownerID string, in *forms.GroupCreateInput) (*ent.Group, error)
	ByID(ctx context.Context, id string) (*ent.Group, error)

	// ListPublic returns joinable groups, newest first.
	ListPublic(ctx context.Context) ([]*ent.Group, error)

	// ListByMember returns groups the user belongs to, newest first.
	ListByMember(ctx context.Context, userID string) ([]*ent.Group, error)

	// Join adds the user to the member list. Returns ErrGroupFull,
	// ErrAlreadyMember, or ErrPrivateGroup when the rules say no.
	Join(ctx context.Context, groupID, userID string) (*ent.Group, error)
}

// QuizRepo manages persisted quizzes.
type QuizRepo interface {
	Save(ctx context.Context, data QuizData) (*ent.Quiz, error)
	ByID(ctx context.Context, id string) (*ent.Quiz, error)
	ListByUser(ctx context.Context, userID string) ([]*ent.Quiz, error)
}

// EventRepo provides append and query access to the event tables.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns LLM request events in sequence order.
	QueryLLMRequests(ctx context.Context, opts QueryOpts) ([]*ent.LLMRequestEvent, error)

	// AppendActivity records an activity feed entry.
	AppendActivity(ctx context.Context, data ActivityEventData) error

	// RecentActivity returns the user's newest feed entries, newest
	// first, capped at limit.
	RecentActivity(ctx context.Context, userID string, limit int) ([]*ent.ActivityEvent, error)
}
