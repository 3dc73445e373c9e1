package transaction

// minAmount is the smallest amount the entry form accepts.
const minAmount = 0.01

// Validate checks entry-form values and returns a map holding only the
// fields that fail. An empty map means the params are acceptable.
func Validate(p CreateParams) ValidationError {
	errs := ValidationError{}

	if amount, ok := ParseAmount(p.AmountText); !ok || amount <= minAmount {
		errs["amount"] = "Please enter a valid amount greater than zero"
	}
	if p.Category == "" {
		errs["category"] = "Please select a category"
	}
	if p.Type != TypeIncome && p.Type != TypeExpense {
		errs["type"] = "Transaction type must be income or expense"
	}
	if p.Description == "" {
		errs["description"] = "Please enter a description"
	}

	return errs
}
