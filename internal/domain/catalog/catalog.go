// Package catalog holds the searchable product catalog owned by directory profiles.
package catalog

// UnnamedEntity stands in for a blank entity name when building identities.
const UnnamedEntity = "unnamed"

// Tag is a free-form label attached to a catalog entity.
type Tag struct {
	Name string `json:"name" yaml:"name"`
}

// Entity is a searchable catalog entry (a product) owned by a profile.
type Entity struct {
	OwnerID     string `json:"owner_id" yaml:"owner_id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Details     string `json:"details,omitempty" yaml:"details,omitempty"`
	Tags        []Tag  `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Identity deduplicates entities: two entries of one owner with the same name are one entity.
type Identity struct {
	OwnerID string
	Name    string
}

// Identity returns the deduplication key (owner, name or "unnamed").
func (e *Entity) Identity() Identity {
	name := e.Name
	if name == "" {
		name = UnnamedEntity
	}
	return Identity{OwnerID: e.OwnerID, Name: name}
}

// Fields returns the free-text fields searched besides tags.
func (e *Entity) Fields() [3]string {
	return [3]string{e.Name, e.Description, e.Details}
}
