package chi

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// exemptPaths bypass authentication.
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

const bearerPrefix = "Bearer "

// BearerAuthMiddleware validates Bearer API keys.
// With no non-empty keys configured, authentication is disabled.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	keys := make([][]byte, 0, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			switch {
			case auth == "":
				writeError(w, http.StatusUnauthorized, ErrorResponseCodeUnauthorized, "missing authorization header")
			case !strings.HasPrefix(auth, bearerPrefix):
				writeError(w, http.StatusUnauthorized,
					ErrorResponseCodeUnauthorized, "authorization header must use Bearer scheme")
			case !knownKey(keys, []byte(auth[len(bearerPrefix):])):
				writeError(w, http.StatusUnauthorized, ErrorResponseCodeUnauthorized, "invalid api key")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func knownKey(keys [][]byte, token []byte) bool {
	found := 0
	for _, k := range keys {
		found |= subtle.ConstantTimeCompare(k, token)
	}
	return found == 1
}
