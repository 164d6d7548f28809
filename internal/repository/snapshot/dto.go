package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	"github.com/kailas-cloud/dirsearch/internal/domain/catalog"
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
)

// entityRow is the stored JSON form of a catalog entity.
type entityRow struct {
	OwnerID     string   `json:"owner_id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Details     string   `json:"details,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// profileRow is the stored JSON form of a profile.
type profileRow struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio,omitempty"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func encodeCatalog(entities []catalog.Entity) ([]byte, error) {
	rows := make([]entityRow, len(entities))
	for i := range entities {
		e := &entities[i]
		if e.OwnerID == "" {
			return nil, fmt.Errorf("entity %d: owner_id is required: %w", i, domain.ErrInvalidSnapshot)
		}
		tags := make([]string, len(e.Tags))
		for j, t := range e.Tags {
			tags[j] = t.Name
		}
		rows[i] = entityRow{
			OwnerID:     e.OwnerID,
			Name:        e.Name,
			Description: e.Description,
			Details:     e.Details,
			Tags:        tags,
		}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

func decodeCatalog(data []byte) ([]catalog.Entity, error) {
	var rows []entityRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w: %w", domain.ErrInvalidSnapshot, err)
	}
	out := make([]catalog.Entity, len(rows))
	for i, r := range rows {
		var tags []catalog.Tag
		if len(r.Tags) > 0 {
			tags = make([]catalog.Tag, len(r.Tags))
			for j, name := range r.Tags {
				tags[j] = catalog.Tag{Name: name}
			}
		}
		out[i] = catalog.Entity{
			OwnerID:     r.OwnerID,
			Name:        r.Name,
			Description: r.Description,
			Details:     r.Details,
			Tags:        tags,
		}
	}
	return out, nil
}

func encodeProfiles(profiles []profile.Profile) ([]byte, error) {
	rows := make([]profileRow, len(profiles))
	seen := make(map[string]struct{}, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		if p.ID == "" {
			return nil, fmt.Errorf("profile %d: id is required: %w", i, domain.ErrInvalidSnapshot)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("profile %q: duplicate id: %w", p.ID, domain.ErrInvalidSnapshot)
		}
		seen[p.ID] = struct{}{}
		rows[i] = profileRow(*p)
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal profiles: %w", err)
	}
	return data, nil
}

func decodeProfiles(data []byte) ([]profile.Profile, error) {
	var rows []profileRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("unmarshal profiles: %w: %w", domain.ErrInvalidSnapshot, err)
	}
	out := make([]profile.Profile, len(rows))
	for i, r := range rows {
		out[i] = profile.Profile(r)
	}
	return out, nil
}
