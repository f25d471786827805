package domain

import "time"

// Audit actions recorded by the async trail.
const (
	AuditLogin           = "login"
	AuditRegister        = "register"
	AuditProductCreated  = "product_created"
	AuditProductUpdated  = "product_updated"
	AuditProductDeleted  = "product_deleted"
	AuditUserDeactivated = "user_deactivated"
)

// AuditEntry records a single security-relevant action by an actor.
type AuditEntry struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	Action     string    `json:"action" bson:"action"`
	ResourceID string    `json:"resource_id,omitempty" bson:"resource_id,omitempty"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
