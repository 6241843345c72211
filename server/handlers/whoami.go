package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	authMiddleware "github.com/ebogdum/authgate/server/middleware"
)

// V1WhoAmI returns the verified claims of the calling identity as JSON.
// It must sit behind the jwt filter.
func V1WhoAmI(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := authMiddleware.IdentityFrom(r.Context())
		if !ok {
			// The route is registered behind the filter; reaching this
			// branch means the wiring is broken, not the caller.
			w.WriteHeader(http.StatusInternalServerError)
			logger.Error("whoami invoked without jwt filter data")
			return
		}

		SendJSONResponse(w, identity.Claims)
	}
}

// SendJSONResponse sends a JSON response with any data structure.
func SendJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"error":"Failed to encode response"}`)
	}
}
