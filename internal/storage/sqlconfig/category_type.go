package sqlconfig

// Stored values of categories.type.
const (
	CategoryTypeExpense = "EXPENSE"
	CategoryTypeIncome  = "INCOME"
)
