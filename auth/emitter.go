package auth

import (
	"encoding/json"
	"net/http"
)

// ResponseEmitter is the default Emitter. Login success carries the signed
// token under a "jwt" key; logout and validation success are empty 200s.
type ResponseEmitter struct{}

type loginResponse struct {
	JWT string `json:"jwt"`
}

// LoginSuccess responds with the signed token as JSON.
func (ResponseEmitter) LoginSuccess(w http.ResponseWriter, signedToken string) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(loginResponse{JWT: signedToken})
}

// LogoutSuccess responds 200 with an empty body.
func (ResponseEmitter) LogoutSuccess(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusOK)
	return nil
}

// ValidateSuccess responds 200 with an empty body.
func (ResponseEmitter) ValidateSuccess(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusOK)
	return nil
}
