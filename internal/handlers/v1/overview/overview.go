package overview

import (
	"github.com/carson-networks/household-ledger/internal/service"
)

// MonthInput selects the month an overview covers.
type MonthInput struct {
	Month int `query:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month"`
	Year  int `query:"year" required:"true" minimum:"1" doc:"Calendar year"`
}

// CategoryTotal is one category's spend for the month.
type CategoryTotal struct {
	CategoryID   string `json:"categoryId" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category name, or Unknown"`
	Total        string `json:"total" doc:"Decimal sum of amounts"`
}

// PayerTotal is one member's spend for the month.
type PayerTotal struct {
	PayerID   string `json:"payerId" doc:"Profile UUID"`
	PayerName string `json:"payerName" doc:"Profile name, or Unknown"`
	Total     string `json:"total" doc:"Decimal sum of amounts"`
}

func categoryTotals(totals []service.CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, len(totals))
	for i, t := range totals {
		out[i] = CategoryTotal{
			CategoryID:   t.CategoryID.String(),
			CategoryName: t.CategoryName,
			Total:        t.Total.StringFixed(2),
		}
	}
	return out
}

func payerTotals(totals []service.PayerTotal) []PayerTotal {
	out := make([]PayerTotal, len(totals))
	for i, t := range totals {
		out[i] = PayerTotal{
			PayerID:   t.PayerID.String(),
			PayerName: t.PayerName,
			Total:     t.Total.StringFixed(2),
		}
	}
	return out
}
