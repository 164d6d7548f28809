package search

import (
	"strings"

	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
	"github.com/kailas-cloud/dirsearch/internal/domain/text"
)

// FilterProfiles returns the active profiles whose display name, bio, category or
// location contains raw. A field matches on a case-insensitive substring of raw, or
// when its normalized form contains the normalized raw, so stylised Unicode on either
// side still matches plain text. A blank raw matches nothing.
func FilterProfiles(raw string, profiles []profile.Profile, n *text.Normalizer) []profile.Profile {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	plain := text.Lower(raw)
	normalized := n.Normalize(raw)

	var out []profile.Profile
	for i := range profiles {
		p := &profiles[i]
		if !p.IsActive {
			continue
		}
		for _, f := range p.SearchFields() {
			if f == "" {
				continue
			}
			if strings.Contains(text.Lower(f), plain) || strings.Contains(n.Normalize(f), normalized) {
				out = append(out, *p)
				break
			}
		}
	}
	return out
}
