package domain

import "time"

// Audit actions recorded by the auth flow.
const (
	AuditLoginSuccess    = "login_success"
	AuditLoginFailure    = "login_failure"
	AuditRegisterSuccess = "register_success"
	AuditRegisterDenied  = "register_denied"
)

// AuditEvent is an append-only record of an auth decision. Events are
// written off the request path; losing one must never fail the request.
type AuditEvent struct {
	Username  string    `json:"username" bson:"username"`
	Action    string    `json:"action" bson:"action"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
