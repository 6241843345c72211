package auth

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const authorizationHeader = "Authorization"

// RequestAccessor is the default Accessor. Credentials come from the raw
// request body; tokens come from the Authorization header in the exact
// "Bearer <token>" form, scheme name case-sensitive.
type RequestAccessor struct{}

// Credentials reads the raw request body.
func (RequestAccessor) Credentials(r *http.Request) (Credentials, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, errors.New("body was not found in the request")
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(body) == 0 {
		return nil, errors.New("body was not found in the request")
	}
	return Credentials(body), nil
}

// BearerToken extracts the token from the Authorization header.
func (RequestAccessor) BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(authorizationHeader)
	if header == "" {
		return "", errors.New("Authorization header not present!")
	}
	parts := strings.Split(header, " ")
	if parts[0] != "Bearer" {
		return "", errors.New("Should be using Bearer schema in the Authorization header")
	}
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("malformed Authorization header, expected 'Bearer <token>'")
	}
	return parts[1], nil
}
