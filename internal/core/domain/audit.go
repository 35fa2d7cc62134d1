package domain

import "time"

// Actor roles attached to every request and every audit entry.
const (
	RoleNotary    = "notary"
	RoleAssistant = "assistant"
	RoleClient    = "client"
	RoleSystem    = "system"
)

// AuditEntry records one state-changing action. Entries are append-only:
// nothing in the system updates or deletes them after the insert.
type AuditEntry struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	ActorRole string            `json:"actor_role" bson:"actor_role"`
	ActorID   string            `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Action    string            `json:"action" bson:"action"`
	Entity    string            `json:"entity" bson:"entity"`
	EntityID  string            `json:"entity_id,omitempty" bson:"entity_id,omitempty"`
	Details   map[string]string `json:"details,omitempty" bson:"details,omitempty"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}
