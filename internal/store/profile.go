package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathcraft/ent"
	"github.com/abhisek/pathcraft/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Save(ctx context.Context, p *Profile) error {
	dataMap, err := profileDataToMap(p.Data)
	if err != nil {
		return fmt.Errorf("marshal profile data: %w", err)
	}

	create := r.client.Profile.Create().SetData(dataMap)
	if !p.Timestamp.IsZero() {
		create = create.SetTimestamp(p.Timestamp)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Latest(ctx context.Context) (*Profile, error) {
	p, err := r.client.Profile.Query().
		Order(ent.Desc(profile.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest profile: %w", err)
	}
	return entProfileToProfile(p)
}

func (r *profileRepo) Prune(ctx context.Context, keep int) error {
	// Find the timestamp threshold: the Nth most recent profile.
	profiles, err := r.client.Profile.Query().
		Order(ent.Desc(profile.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query profiles for prune: %w", err)
	}
	if len(profiles) == 0 {
		return nil // fewer than keep profiles exist
	}

	threshold := profiles[0].Timestamp
	_, err = r.client.Profile.Delete().
		Where(profile.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune profiles: %w", err)
	}
	return nil
}

// profileDataToMap converts ProfileData to map[string]any for ent JSON storage.
func profileDataToMap(data ProfileData) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// entProfileToProfile converts an ent Profile to a store Profile.
func entProfileToProfile(p *ent.Profile) (*Profile, error) {
	b, err := json.Marshal(p.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	var data ProfileData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal profile data: %w", err)
	}
	return &Profile{
		ID:        p.ID,
		Timestamp: p.Timestamp,
		Data:      data,
	}, nil
}
