package sheets

import "fmt"

// ConfigError marks missing or malformed credential/configuration input.
// It is fatal to any operation and deliberately distinct from network
// errors so operators can tell "misconfigured" from "remote outage".
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sheets configuration: %s", e.Reason)
}

// AuthError is returned when the token endpoint rejects the signed
// assertion. Status and Body carry the endpoint response verbatim;
// likely causes are a rotated key, clock skew, or a wrong scope.
type AuthError struct {
	Status int
	Body   string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("token exchange rejected: status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("token exchange failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// RemoteError is any non-2xx response from the value read or write
// endpoints, with status and body kept verbatim for diagnosis.
type RemoteError struct {
	Op     string // "read" or "write"
	Range  string
	Status int
	Body   string
	Err    error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("sheets %s %s: status %d: %s", e.Op, e.Range, e.Status, e.Body)
}

func (e *RemoteError) Unwrap() error { return e.Err }
