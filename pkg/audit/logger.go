// Package audit provides a minimal structured-event sink for
// observing AUDIT_ACCESS obligations emitted by the PDP. Persistence
// of audit events is explicitly out of scope for the core (§1); this
// package exists only to make obligation emission observable in the
// demo CLI.
package audit

import (
	"context"
	"log/slog"

	"github.com/Mindburn-Labs/classguard/pkg/policy"
)

// Event is one audited access, grounded on the teacher's
// audit.Logger/Record shape.
type Event struct {
	DecisionID string
	UserID     string
	Resource   string
	Reason     string
}

// Logger records audit Events. The core never calls this on its own —
// it is wired by callers (e.g. the CLI) that observe a Decision's
// AUDIT_ACCESS obligation.
type Logger interface {
	Record(ctx context.Context, event Event)
}

// SlogLogger is a Logger backed by log/slog, the ambient logging
// convention this module carries throughout.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger (or slog.Default() when nil) as a Logger.
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) Record(ctx context.Context, event Event) {
	l.logger.InfoContext(ctx, "access audited",
		slog.String("decision_id", event.DecisionID),
		slog.String("user_id", event.UserID),
		slog.String("resource", event.Resource),
		slog.String("reason", event.Reason),
	)
}

// HasAuditObligation reports whether obligations contains an
// AUDIT_ACCESS entry.
func HasAuditObligation(obligations []policy.DecisionObligation) bool {
	for _, o := range obligations {
		if o.Type == policy.ObligationAuditAccess {
			return true
		}
	}
	return false
}
