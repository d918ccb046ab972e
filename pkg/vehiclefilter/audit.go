package vehiclefilter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/autofiltro/catalog/pkg/sanitizer"
)

// Audit record field limits. Keys and values are re-sanitized and truncated
// before they reach the log stream.
const (
	auditMaxKeyLen    = 20
	auditMaxValueLen  = 50
	auditMaxOriginLen = 64
)

// Auditor records accepted filter selections for usage analysis. Record is
// fire-and-forget: implementations must never panic or return anything the
// caller depends on.
type Auditor interface {
	Record(ctx context.Context, sel Selection, origin string)
}

// SlogAuditor writes filter usage records to a structured logger.
type SlogAuditor struct {
	log *slog.Logger
}

// NewSlogAuditor returns an Auditor backed by the given logger. A nil logger
// yields a silent auditor.
func NewSlogAuditor(log *slog.Logger) *SlogAuditor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &SlogAuditor{log: log}
}

// Record writes one usage record. Keys are truncated to 20 characters and
// values to 50; the origin identifier is length-capped and stripped of
// control characters. Internal failures are swallowed and logged separately
// so callers never observe them.
func (a *SlogAuditor) Record(ctx context.Context, sel Selection, origin string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.ErrorContext(ctx, "filter audit failed", "panic", fmt.Sprint(r))
		}
	}()

	attrs := make([]any, 0, 2+len(sel)*2)
	attrs = append(attrs,
		"event_id", uuid.New().String(),
		"origin", sanitizer.MaxLength(sanitizer.RemoveControlChars(origin), auditMaxOriginLen),
	)

	for _, dim := range Dimensions() {
		token, ok := sel.Get(dim)
		if !ok {
			continue
		}
		key := sanitizer.MaxLength(Sanitize(string(dim)), auditMaxKeyLen)
		value := sanitizer.MaxLength(Sanitize(token), auditMaxValueLen)
		if key == "" {
			continue
		}
		attrs = append(attrs, key, value)
	}

	a.log.InfoContext(ctx, "vehicle filter usage", attrs...)
}
