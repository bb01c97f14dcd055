package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rgoyal/studyhall/ent"
	"github.com/rgoyal/studyhall/ent/group"
	"github.com/rgoyal/studyhall/internal/forms"
)

type groupRepo struct {
	client *ent.Client
	joinMu *sync.Mutex
}

func (r *groupRepo) Create(ctx context.Context, ownerID string, in *forms.GroupCreateInput) (*ent.Group, error) {
	create := r.client.Group.Create().
		SetOwnerID(ownerID).
		SetName(in.Name).
		SetTags(in.TagList()).
		SetIsPublic(in.Public()).
		SetMaxMembers(in.Capacity()).
		SetMembers([]string{ownerID})

	if in.Description.Set && in.Description.Valid {
		create.SetDescription(in.Description.Value)
	}

	g, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return g, nil
}

func (r *groupRepo) ByID(ctx context.Context, id string) (*ent.Group, error) {
	return r.client.Group.Get(ctx, id)
}

func (r *groupRepo) ListPublic(ctx context.Context) ([]*ent.Group, error) {
	return r.client.Group.Query().
		Where(group.IsPublic(true)).
		Order(ent.Desc(group.FieldCreatedAt)).
		All(ctx)
}

// ListByMember filters in Go. Membership lives in a JSON column, and
// JSON-path predicates on SQLite are not worth the trouble at this
// scale.
func (r *groupRepo) ListByMember(ctx context.Context, userID string) ([]*ent.Group, error) {
	all, err := r.client.Group.Query().
		Order(ent.Desc(group.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	var out []*ent.Group
	for _, g := range all {
		if slices.Contains(g.Members, userID) {
			out = append(out, g)
		}
	}
	return out, nil
}

// Join adds userID to a group's member list. The capacity check and
// the member write must not interleave with another join, so the whole
// read-modify-write runs in a transaction, serialized in-process the
// same way as the event sequence counter.
func (r *groupRepo) Join(ctx context.Context, groupID, userID string) (*ent.Group, error) {
	r.joinMu.Lock()
	defer r.joinMu.Unlock()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin join: %w", err)
	}

	g, err := tx.Group.Get(ctx, groupID)
	if err != nil {
		return nil, rollback(tx, err)
	}

	if slices.Contains(g.Members, userID) {
		return nil, rollback(tx, ErrAlreadyMember)
	}
	if !g.IsPublic {
		return nil, rollback(tx, ErrPrivateGroup)
	}
	if len(g.Members) >= g.MaxMembers {
		return nil, rollback(tx, ErrGroupFull)
	}

	members := append(slices.Clone(g.Members), userID)
	g, err = tx.Group.UpdateOneID(g.ID).SetMembers(members).Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("join group: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit join: %w", err)
	}
	return g, nil
}

// rollback aborts tx, keeping err as the primary error so sentinel
// checks with errors.Is still work.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
