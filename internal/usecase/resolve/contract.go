package resolve

import (
	"context"

	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
)

// ProfileReader loads the profile snapshot.
type ProfileReader interface {
	Profiles(ctx context.Context) ([]profile.Profile, error)
}
