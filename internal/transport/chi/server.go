package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dirsearch/internal/domain"
	"github.com/kailas-cloud/dirsearch/internal/domain/profile"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/request"
	"github.com/kailas-cloud/dirsearch/internal/domain/search/result"
	healthuc "github.com/kailas-cloud/dirsearch/internal/usecase/health"
	resolveuc "github.com/kailas-cloud/dirsearch/internal/usecase/resolve"
	searchuc "github.com/kailas-cloud/dirsearch/internal/usecase/search"
	"github.com/kailas-cloud/dirsearch/internal/version"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements ServerInterface.
type Server struct {
	search        *searchuc.Service
	resolve       *resolveuc.Service
	health        *healthuc.Service
	bounds        request.Bounds
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	resolve *resolveuc.Service,
	health *healthuc.Service,
	bounds request.Bounds,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		resolve: resolve,
		health:  health,
		bounds:  bounds,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrProfileNotFound, http.StatusNotFound, ErrorResponseCodeProfileNotFound),
		sentinelHandler(domain.ErrSnapshotNotFound, http.StatusServiceUnavailable, ErrorResponseCodeSnapshotNotLoaded),
		sentinelHandler(domain.ErrInvalidSnapshot, http.StatusInternalServerError, ErrorResponseCodeSnapshotCorrupted),
	}
	return s
}

// Search handles GET /search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request, params SearchParams) {
	req, err := request.New(derefString(params.Q), derefInt(params.Limit), s.bounds)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	res, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResultToResponse(&res, req.Limit()))
}

// ResolveProfile handles GET /profiles/{segment}.
func (s *Server) ResolveProfile(w http.ResponseWriter, r *http.Request, segment string) {
	out, err := s.resolve.Resolve(r.Context(), segment)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	found, ok := out.(resolveuc.Found)
	if !ok {
		s.handleDomainError(w, r, domain.ErrProfileNotFound)
		return
	}

	writeJSON(w, http.StatusOK, ResolveResponse{
		Profile: profileToResponse(&found.Profile),
		Stage:   string(found.Stage),
	})
}

// Normalize handles GET /normalize.
func (s *Server) Normalize(w http.ResponseWriter, _ *http.Request, params NormalizeParams) {
	writeJSON(w, http.StatusOK, NormalizeResponse{
		Text:       params.Text,
		Normalized: s.search.Normalize(params.Text),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version.Version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// BadRequestHandler renders parameter binding failures.
func BadRequestHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var pe *InvalidParamFormatError
	if errors.As(err, &pe) {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "invalid parameter: "+pe.ParamName)
		return
	}
	writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "invalid request")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidQuery,
		domain.ErrProfileNotFound,
		domain.ErrSnapshotNotFound,
		domain.ErrInvalidSnapshot,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.logger.With(zap.String("path", r.URL.Path))
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}

func searchResultToResponse(r *result.Result, limit int) SearchResponse {
	q := r.Query()
	profiles := make([]ProfileResponse, len(r.Profiles()))
	for i := range r.Profiles() {
		profiles[i] = profileToResponse(&r.Profiles()[i])
	}

	keywords := q.Keywords()
	if keywords == nil {
		keywords = []string{}
	}
	owners := r.Match().OwnerIDs()
	if owners == nil {
		owners = []string{}
	}

	return SearchResponse{
		Query:           q.Raw(),
		Mode:            string(q.Mode()),
		Keywords:        keywords,
		MatchedOwnerIDs: owners,
		TagMatchCount:   r.Match().TagMatchCount(),
		Total:           r.Total(),
		Limit:           limit,
		Profiles:        profiles,
	}
}

func profileToResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Slug:        resolveuc.CanonicalSlug(p.DisplayName),
		Bio:         p.Bio,
		Category:    p.Category,
		Location:    p.Location,
		CreatedAt:   p.CreatedAt,
	}
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
