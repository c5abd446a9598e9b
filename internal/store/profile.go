package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const profilesTable = "learner_profiles"

// ErrProfileExists is returned by Create when the learner already has a profile.
var ErrProfileExists = errors.New("profile already exists")

// profileRepo implements ProfileRepo.
type profileRepo struct {
	drv *entsql.Driver
}

func (r *profileRepo) Get(ctx context.Context, name string) (*ProfileRecord, error) {
	sel := builder.Select("name", "display_name", "data", "created_at").
		From(entsql.Table(profilesTable)).
		Where(entsql.EQ("name", name))

	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("get profile %q: %w", name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	rec, err := scanProfile(rows)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *profileRepo) Create(ctx context.Context, rec ProfileRecord) error {
	existing, err := r.Get(ctx, rec.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", ErrProfileExists, rec.Name)
	}

	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	data := string(rec.Data)
	if data == "" {
		data = "{}"
	}

	insert := builder.Insert(profilesTable).
		Columns("name", "display_name", "data", "created_at").
		Values(rec.Name, rec.DisplayName, data, created.UnixMilli())
	if _, err := exec(ctx, r.drv, insert); err != nil {
		return fmt.Errorf("save profile %q: %w", rec.Name, err)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, name string) error {
	del := builder.Delete(profilesTable).Where(entsql.EQ("name", name))
	if _, err := exec(ctx, r.drv, del); err != nil {
		return fmt.Errorf("delete profile %q: %w", name, err)
	}
	return nil
}

func (r *profileRepo) List(ctx context.Context) ([]ProfileRecord, error) {
	sel := builder.Select("name", "display_name", "data", "created_at").
		From(entsql.Table(profilesTable)).
		OrderBy("name")

	rows, err := query(ctx, r.drv, sel)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []ProfileRecord
	for rows.Next() {
		rec, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanProfile(rows *entsql.Rows) (ProfileRecord, error) {
	var (
		rec  ProfileRecord
		data string
		ts   int64
	)
	if err := rows.Scan(&rec.Name, &rec.DisplayName, &data, &ts); err != nil {
		return rec, fmt.Errorf("scan profile: %w", err)
	}
	rec.Data = []byte(data)
	rec.CreatedAt = time.UnixMilli(ts).UTC()
	return rec, nil
}
