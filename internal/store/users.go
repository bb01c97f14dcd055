package store

import (
	"context"
	"fmt"

	"github.com/rgoyal/studyhall/ent"
	"github.com/rgoyal/studyhall/ent/user"
	"github.com/rgoyal/studyhall/internal/forms"
)

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, id, email, name string) (*ent.User, error) {
	create := r.client.User.Create().
		SetEmail(email).
		SetName(name)
	if id != "" {
		create.SetID(id)
	}

	u, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *userRepo) ByID(ctx context.Context, id string) (*ent.User, error) {
	return r.client.User.Get(ctx, id)
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*ent.User, error) {
	return r.client.User.Query().Where(user.Email(email)).Only(ctx)
}

func (r *userRepo) UpdatePreferences(ctx context.Context, id string, in *forms.ProfilePreferencesInput) (*ent.User, error) {
	upd := r.client.User.UpdateOneID(id)

	if in.Name != nil {
		upd.SetName(*in.Name)
	}
	if in.Timezone != nil {
		upd.SetTimezone(*in.Timezone)
	}
	if in.EducationLevel != nil {
		upd.SetEducationLevel(*in.EducationLevel)
	}
	if in.StudyStyle != nil {
		upd.SetStudyStyle(*in.StudyStyle)
	}
	if in.DaysOfWeek != nil {
		upd.SetDaysOfWeek(in.DaysOfWeek)
	}
	if in.StudyTimes != nil {
		upd.SetStudyTimes(in.StudyTimes)
	}
	if in.Subjects != nil {
		upd.SetSubjects(in.Subjects)
	}

	u, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}
	return u, nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	return r.client.User.DeleteOneID(id).Exec(ctx)
}
