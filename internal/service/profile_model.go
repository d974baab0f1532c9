package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

// Profile is a household member.
type Profile struct {
	ID        uuid.UUID
	FullName  string
	CreatedAt time.Time
}

func profileFromRow(row sqlconfig.ProfileRow) Profile {
	return Profile{
		ID:        row.ID,
		FullName:  row.FullName,
		CreatedAt: row.CreatedAt,
	}
}
