package chi

import "time"

// ErrorResponseCode is the machine-readable error code in error bodies.
type ErrorResponseCode string

// Error codes returned by the API.
const (
	ErrorResponseCodeBadRequest        ErrorResponseCode = "bad_request"
	ErrorResponseCodeUnauthorized      ErrorResponseCode = "unauthorized"
	ErrorResponseCodeValidationFailed  ErrorResponseCode = "validation_failed"
	ErrorResponseCodeProfileNotFound   ErrorResponseCode = "profile_not_found"
	ErrorResponseCodeSnapshotNotLoaded ErrorResponseCode = "snapshot_not_loaded"
	ErrorResponseCodeSnapshotCorrupted ErrorResponseCode = "snapshot_corrupted"
	ErrorResponseCodeInternalError     ErrorResponseCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Slug        string    `json:"slug"`
	Bio         string    `json:"bio,omitempty"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SearchResponse is the body of GET /search.
type SearchResponse struct {
	Query           string            `json:"query"`
	Mode            string            `json:"mode"`
	Keywords        []string          `json:"keywords"`
	MatchedOwnerIDs []string          `json:"matched_owner_ids"`
	TagMatchCount   int               `json:"tag_match_count"`
	Total           int               `json:"total"`
	Limit           int               `json:"limit"`
	Profiles        []ProfileResponse `json:"profiles"`
}

// ResolveResponse is the body of GET /profiles/{segment}.
type ResolveResponse struct {
	Profile ProfileResponse `json:"profile"`
	Stage   string          `json:"stage"`
}

// NormalizeResponse is the body of GET /normalize.
type NormalizeResponse struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version"`
}
