package chi

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// SearchParams are the query parameters of GET /search.
type SearchParams struct {
	Q     *string `form:"q,omitempty" json:"q,omitempty"`
	Limit *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// NormalizeParams are the query parameters of GET /normalize.
type NormalizeParams struct {
	Text string `form:"text" json:"text"`
}

// ServerInterface lists the API operations.
type ServerInterface interface {
	// (GET /search)
	Search(w http.ResponseWriter, r *http.Request, params SearchParams)
	// (GET /profiles/{segment})
	ResolveProfile(w http.ResponseWriter, r *http.Request, segment string)
	// (GET /normalize)
	Normalize(w http.ResponseWriter, r *http.Request, params NormalizeParams)
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// InvalidParamFormatError reports a parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseRouter       chi.Router
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerWithOptions mounts the API routes on options.BaseRouter.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	errorHandler := options.ErrorHandlerFunc
	if errorHandler == nil {
		errorHandler = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	b := &binder{si: si, onError: errorHandler}

	r.Get("/search", b.search)
	r.Get("/profiles/{segment}", b.resolveProfile)
	r.Get("/normalize", b.normalize)
	r.Get("/health", si.HealthCheck)
	r.Get("/metrics", si.Metrics)
	return r
}

// binder decodes parameters before calling the ServerInterface.
type binder struct {
	si      ServerInterface
	onError func(w http.ResponseWriter, r *http.Request, err error)
}

func (b *binder) search(w http.ResponseWriter, r *http.Request) {
	var params SearchParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "q", query, &params.Q); err != nil {
		b.onError(w, r, &InvalidParamFormatError{ParamName: "q", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		b.onError(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	b.si.Search(w, r, params)
}

func (b *binder) resolveProfile(w http.ResponseWriter, r *http.Request) {
	segment, err := pathSegment(r, "segment")
	if err != nil {
		b.onError(w, r, &InvalidParamFormatError{ParamName: "segment", Err: err})
		return
	}

	b.si.ResolveProfile(w, r, segment)
}

// pathSegment returns a path parameter percent-decoded exactly once. chi matches
// on r.URL.RawPath when it is set and on the already decoded r.URL.Path otherwise.
func pathSegment(r *http.Request, name string) (string, error) {
	param := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return param, nil
	}
	decoded, err := url.PathUnescape(param)
	if err != nil {
		return "", fmt.Errorf("unescape %s: %w", name, err)
	}
	return decoded, nil
}

func (b *binder) normalize(w http.ResponseWriter, r *http.Request) {
	var params NormalizeParams
	if err := runtime.BindQueryParameter("form", true, true, "text", r.URL.Query(), &params.Text); err != nil {
		b.onError(w, r, &InvalidParamFormatError{ParamName: "text", Err: err})
		return
	}

	b.si.Normalize(w, r, params)
}
