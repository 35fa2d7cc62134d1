package ports

import "context"

// AuditInput is the DTO passed by workflow components for each logical mutation.
type AuditInput struct {
	ActorRole string
	ActorID   string // optional
	Action    string // e.g. "create", "update_status", "book", "render"
	Entity    string // e.g. "case", "appointment", "client", "document", "payment"
	EntityID  string // optional
	Details   map[string]string
}

// AuditRecorder appends one immutable entry per state-changing action.
//
// A failed Record call is reported to the caller but must never roll back the
// business mutation it accompanies: the primary record wins over audit
// completeness. Callers log and count the failure instead. The upgrade path
// to stronger guarantees is an outbox written in the same transaction; that
// is future work, deliberately not hidden inside this interface.
type AuditRecorder interface {
	Record(ctx context.Context, in AuditInput) (string, error)
}
