package service

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// UnknownLabel names a bucket whose category or profile could not be found.
const UnknownLabel = "Unknown"

// CategoryTotal is the month's spend for one category.
type CategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Total        decimal.Decimal
}

// PayerTotal is the month's spend paid by one household member.
type PayerTotal struct {
	PayerID   uuid.UUID
	PayerName string
	Total     decimal.Decimal
}

// MonthOverview holds both breakdowns for one month.
type MonthOverview struct {
	Month      int
	Year       int
	ByCategory []CategoryTotal
	ByPayer    []PayerTotal
}
