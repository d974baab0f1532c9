package record

// Payload is a column-name to value mapping handed to the storage layer on writes.
type Payload map[string]any

// Clone returns a shallow copy. A nil payload clones to an empty one.
func (p Payload) Clone() Payload {
	out := make(Payload, len(p)+4)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Audit column names shared by categories and transactions.
const (
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
	ColumnDeletedAt = "deleted_at"
	ColumnCreatedBy = "created_by"
	ColumnUpdatedBy = "updated_by"
	ColumnDeletedBy = "deleted_by"
)
