package store

import (
	"context"
	"fmt"

	"github.com/rgoyal/studyhall/ent"
	"github.com/rgoyal/studyhall/ent/todo"
	"github.com/rgoyal/studyhall/internal/forms"
)

type todoRepo struct {
	client *ent.Client
}

func (r *todoRepo) Create(ctx context.Context, userID string, in *forms.TodoCreateInput) (*ent.Todo, error) {
	create := r.client.Todo.Create().
		SetUserID(userID).
		SetTitle(in.Title).
		SetStatus(in.Status).
		SetType(in.Type)

	if in.Description != nil {
		create.SetDescription(*in.Description)
	}
	if in.DueDate != nil {
		create.SetDueDate(*in.DueDate)
	}
	if in.Priority != nil {
		create.SetPriority(*in.Priority)
	}
	if in.GroupID != nil {
		create.SetGroupID(*in.GroupID)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return t, nil
}

func (r *todoRepo) ByID(ctx context.Context, id string) (*ent.Todo, error) {
	return r.client.Todo.Get(ctx, id)
}

func (r *todoRepo) ListByUser(ctx context.Context, userID string) ([]*ent.Todo, error) {
	return r.client.Todo.Query().
		Where(todo.UserID(userID)).
		Order(ent.Desc(todo.FieldCreatedAt)).
		All(ctx)
}

func (r *todoRepo) ListByGroup(ctx context.Context, groupID string) ([]*ent.Todo, error) {
	return r.client.Todo.Query().
		Where(todo.GroupID(groupID)).
		Order(ent.Desc(todo.FieldCreatedAt)).
		All(ctx)
}

// Update applies a three-state patch: absent fields stay, explicit
// nulls clear nullable columns, values replace.
func (r *todoRepo) Update(ctx context.Context, id string, in *forms.TodoUpdateInput) (*ent.Todo, error) {
	upd := r.client.Todo.UpdateOneID(id)

	if in.Title.Set && in.Title.Valid {
		upd.SetTitle(in.Title.Value)
	}
	if in.Description.Set {
		if in.Description.Valid {
			upd.SetDescription(in.Description.Value)
		} else {
			upd.ClearDescription()
		}
	}
	if in.DueDate.Set {
		if in.DueDate.Valid {
			upd.SetDueDate(in.DueDate.Value)
		} else {
			upd.ClearDueDate()
		}
	}
	if in.Status.Set && in.Status.Valid {
		upd.SetStatus(in.Status.Value)
	}
	if in.Type.Set && in.Type.Valid {
		upd.SetType(in.Type.Value)
	}
	if in.Priority.Set {
		if in.Priority.Valid {
			upd.SetPriority(in.Priority.Value)
		} else {
			upd.ClearPriority()
		}
	}
	if in.GroupID.Set {
		if in.GroupID.Valid {
			upd.SetGroupID(in.GroupID.Value)
		} else {
			upd.ClearGroupID()
		}
	}

	t, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return t, nil
}

func (r *todoRepo) Delete(ctx context.Context, id string) error {
	return r.client.Todo.DeleteOneID(id).Exec(ctx)
}
