package middleware

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/ebogdum/authgate/auth"
)

// WriteError renders an auth error onto the response: 401 for Unauthorized,
// 403 for Forbidden, body is the rendered cause chain. Anything outside the
// taxonomy is not this layer's error to handle: WriteError reports false and
// the caller must propagate it unmodified.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) bool {
	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		return false
	}

	var statusCode int
	switch authErr.Kind {
	case auth.Unauthorized:
		statusCode = http.StatusUnauthorized
	case auth.Forbidden:
		statusCode = http.StatusForbidden
	default:
		return false
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, werr := io.WriteString(w, authErr.Error()); werr != nil {
		logger.Error("Failed to write auth error response", zap.Error(werr))
	}

	logger.Info("Auth error response sent",
		zap.Int("status_code", statusCode),
		zap.String("kind", authErr.Kind.String()),
		zap.Error(authErr))
	return true
}
