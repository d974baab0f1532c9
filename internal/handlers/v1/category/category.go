package category

import (
	"time"

	"github.com/carson-networks/household-ledger/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID        string  `json:"id" doc:"Category UUID"`
	Name      string  `json:"name" doc:"Upper-cased display name"`
	Type      string  `json:"type" enum:"EXPENSE,INCOME" doc:"Whether the category books expenses or income"`
	CreatedAt string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string  `json:"updatedAt" doc:"RFC3339 last update time"`
	DeletedAt *string `json:"deletedAt,omitempty" doc:"RFC3339 soft-delete time, absent while live"`
}

func fromService(c *service.Category) Category {
	out := Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      c.Type.String(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.DeletedAt != nil {
		deletedAt := c.DeletedAt.Format(time.RFC3339)
		out.DeletedAt = &deletedAt
	}
	return out
}
