package resolve

import "github.com/kailas-cloud/dirsearch/internal/domain/profile"

// Outcome is the result of resolving a path segment: Found or NotFound.
type Outcome interface {
	outcome()
}

// Found carries the resolved profile and the stage that matched it.
type Found struct {
	Profile profile.Profile
	Stage   Stage
}

// NotFound means no active profile matched any stage.
type NotFound struct{}

func (Found) outcome()    {}
func (NotFound) outcome() {}

// Lookup unpacks an Outcome.
func Lookup(o Outcome) (profile.Profile, bool) {
	if f, ok := o.(Found); ok {
		return f.Profile, true
	}
	return profile.Profile{}, false
}
