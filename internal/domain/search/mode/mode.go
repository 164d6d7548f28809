package mode

// Mode is the keyword combination strategy derived from a query.
type Mode string

// Search mode constants.
const (
	// Single treats the whole trimmed query as one keyword; any hit counts.
	Single Mode = "single"
	// Multi requires every comma-separated keyword to match the same entity.
	Multi Mode = "multi"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Single || m == Multi
}
