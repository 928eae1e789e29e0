package google

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"

	"eclor/internal/sheets"
)

// Spreadsheet scopes; which one a deployment gets is a config choice.
const (
	scopeReadWrite = "https://www.googleapis.com/auth/spreadsheets"
	scopeReadOnly  = "https://www.googleapis.com/auth/spreadsheets.readonly"
)

// tokenSource builds the service-account JWT-bearer token source: an
// RS256-signed assertion (iss = account email, aud = token endpoint,
// scope per config, exp = now+1h) exchanged for a bearer token. The
// returned source reuses each token until near expiry, so a fresh
// exchange is not paid per call.
//
// Credential problems surface here as *sheets.ConfigError; a rejected
// assertion surfaces later, at first use, as an *oauth2.RetrieveError
// that the client maps to *sheets.AuthError.
func tokenSource(ctx context.Context, cfg Config) (oauth2.TokenSource, error) {
	if strings.TrimSpace(cfg.ServiceAccountEmail) == "" {
		return nil, &sheets.ConfigError{Reason: "missing service account email"}
	}
	key := normalizeKeyPEM(cfg.PrivateKeyPEM)
	if key == "" {
		return nil, &sheets.ConfigError{Reason: "missing service account private key"}
	}
	if err := validateRSAKey([]byte(key)); err != nil {
		return nil, &sheets.ConfigError{Reason: "invalid service account private key: " + err.Error()}
	}

	conf := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(key),
		Scopes:     []string{cfg.Scope()},
		TokenURL:   google.JWTTokenURL,
		Expires:    time.Hour,
	}
	return conf.TokenSource(ctx), nil
}

// normalizeKeyPEM unescapes the newline-escaped form the key takes when
// it travels through a single-line environment variable.
func normalizeKeyPEM(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `\n`, "\n"))
}

// validateRSAKey rejects malformed keys up front instead of at the
// first token fetch. Service account keys ship as PKCS8; PKCS1 is
// accepted for parity with the token library.
func validateRSAKey(pemBytes []byte) error {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return errNotPEM
	}
	if parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		if _, ok := parsed.(*rsa.PrivateKey); ok {
			return nil
		}
		return errNotRSA
	}
	if _, err := x509.ParsePKCS1PrivateKey(block.Bytes); err != nil {
		return err
	}
	return nil
}

var (
	errNotPEM = pemError("no PEM block found")
	errNotRSA = pemError("not an RSA key")
)

type pemError string

func (e pemError) Error() string { return string(e) }
