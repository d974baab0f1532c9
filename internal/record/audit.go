package record

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Op is the kind of write being stamped.
type Op int8

const (
	OpCreate Op = iota
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Stamper attaches audit columns to a payload right before it is written.
type Stamper struct {
	now func() time.Time
}

// NewStamper creates a Stamper reading time from now. A nil clock falls back to time.Now.
func NewStamper(now func() time.Time) *Stamper {
	if now == nil {
		now = time.Now
	}
	return &Stamper{now: now}
}

// Stamp returns a copy of p carrying the audit columns for op. An invalid
// actor is written as NULL. Fields not owned by op are left as given, so an
// update never touches created_*.
func (s *Stamper) Stamp(p Payload, op Op, actor uuid.NullUUID) Payload {
	out := p.Clone()
	now := s.now().UTC()
	by := actorValue(actor)

	switch op {
	case OpCreate:
		out[ColumnCreatedAt] = now
		out[ColumnUpdatedAt] = now
		out[ColumnCreatedBy] = by
		out[ColumnUpdatedBy] = by
	case OpUpdate:
		out[ColumnUpdatedAt] = now
		out[ColumnUpdatedBy] = by
	case OpDelete:
		out[ColumnDeletedAt] = now
		out[ColumnDeletedBy] = by
		out[ColumnUpdatedAt] = now
	}
	return out
}

func actorValue(actor uuid.NullUUID) any {
	if !actor.Valid {
		return nil
	}
	return actor.UUID
}
