package bootstrap

import "context"

// AuditLog is one operational audit entry (startup, shutdown, seed results).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
