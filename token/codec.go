package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignOptions controls how a claim set is signed. The zero value signs with
// HS256 and adds only the issued-at claim.
type SignOptions struct {
	// Method is the signing algorithm. Defaults to HS256.
	Method jwt.SigningMethod

	// ExpiresIn adds an exp claim this far in the future when positive.
	ExpiresIn time.Duration

	// Issuer sets the iss claim when non-empty.
	Issuer string

	// Audience sets the aud claim when non-empty.
	Audience string

	// Subject sets the sub claim when non-empty.
	Subject string
}

// VerifyOptions controls signature and registered-claim validation.
type VerifyOptions struct {
	// Methods is the allow-list of signing algorithms. Defaults to HS256 only.
	Methods []string

	// Issuer, when non-empty, requires a matching iss claim.
	Issuer string

	// Audience, when non-empty, requires a matching aud claim.
	Audience string

	// Leeway tolerates this much clock skew on time-based claims.
	Leeway time.Duration
}

// CodecError reports a failure of the underlying JWT primitive. It wraps the
// library error so callers can inspect it with errors.Is.
type CodecError struct {
	Op  string // "sign", "decode" or "verify"
	Err error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("token %s failed: %v", e.Op, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

// Sign serializes and signs a claim set, adding the issued-at claim and the
// registered claims requested by opts. A nil opts signs with defaults.
func Sign(claims Claims, secret []byte, opts *SignOptions) (string, error) {
	if opts == nil {
		opts = &SignOptions{}
	}
	method := opts.Method
	if method == nil {
		method = jwt.SigningMethodHS256
	}

	now := time.Now()
	mc := make(jwt.MapClaims, len(claims)+4)
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = jwt.NewNumericDate(now)
	if opts.ExpiresIn != 0 {
		mc["exp"] = jwt.NewNumericDate(now.Add(opts.ExpiresIn))
	}
	if opts.Issuer != "" {
		mc["iss"] = opts.Issuer
	}
	if opts.Audience != "" {
		mc["aud"] = opts.Audience
	}
	if opts.Subject != "" {
		mc["sub"] = opts.Subject
	}

	signed, err := jwt.NewWithClaims(method, mc).SignedString(secret)
	if err != nil {
		return "", &CodecError{Op: "sign", Err: err}
	}
	return signed, nil
}

// Decode parses the claim set of a token WITHOUT validating its signature.
// The result is only good for selecting verification parameters; trust
// nothing in it until Verify has succeeded.
func Decode(tokenString string) (UntrustedClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, &CodecError{Op: "decode", Err: err}
	}
	return UntrustedClaims(claims), nil
}

// Verify validates a token's signature and registered claims and returns the
// trusted claim set. A nil opts verifies with defaults.
func Verify(tokenString string, secret []byte, opts *VerifyOptions) (Claims, error) {
	if opts == nil {
		opts = &VerifyOptions{}
	}
	methods := opts.Methods
	if len(methods) == 0 {
		methods = []string{jwt.SigningMethodHS256.Alg()}
	}

	parserOpts := []jwt.ParserOption{jwt.WithValidMethods(methods)}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.Audience))
	}
	if opts.Leeway > 0 {
		parserOpts = append(parserOpts, jwt.WithLeeway(opts.Leeway))
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.NewParser(parserOpts...).ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, &CodecError{Op: "verify", Err: err}
	}
	if !parsed.Valid {
		return nil, &CodecError{Op: "verify", Err: errors.New("token is not valid")}
	}
	return Claims(claims), nil
}
