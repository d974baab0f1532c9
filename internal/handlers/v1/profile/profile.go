package profile

import (
	"time"

	"github.com/carson-networks/household-ledger/internal/service"
)

// Profile is the API response model for a household member.
type Profile struct {
	ID        string `json:"id" doc:"Profile UUID"`
	FullName  string `json:"fullName" doc:"Display name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(p *service.Profile) Profile {
	return Profile{
		ID:        p.ID.String(),
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
