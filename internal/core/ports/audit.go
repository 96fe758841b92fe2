package ports

import "time"

// AuditEvent is a single security-relevant occurrence. Detail must never
// contain a password or a password hash.
type AuditEvent struct {
	Action    string
	UserID    string
	Email     string
	Detail    string
	Timestamp time.Time
}

// AuditLogger records security events fire-and-forget: Record must never
// block the calling operation and must never fail it.
type AuditLogger interface {
	Record(event AuditEvent)
}
