// Package category holds the immutable catalog of expense and income
// categories. The two catalogs are fixed at compile time; lookup by id is
// total across both.
package category

// Category is a single catalog entry. Icon names follow the mobile icon
// set; colors are hex.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Type  string `json:"type"` // "expense" or "income"
}

// ExpenseCategories is the ordered expense catalog.
var ExpenseCategories = []Category{
	{ID: "food", Name: "Food & Dining", Icon: "restaurant", Color: "#FF6B6B", Type: "expense"},
	{ID: "transport", Name: "Transport", Icon: "car", Color: "#4ECDC4", Type: "expense"},
	{ID: "shopping", Name: "Shopping", Icon: "cart", Color: "#FFD93D", Type: "expense"},
	{ID: "entertainment", Name: "Entertainment", Icon: "film", Color: "#A78BFA", Type: "expense"},
	{ID: "bills", Name: "Bills & Utilities", Icon: "receipt", Color: "#F59E0B", Type: "expense"},
	{ID: "health", Name: "Health", Icon: "medkit", Color: "#34D399", Type: "expense"},
	{ID: "education", Name: "Education", Icon: "school", Color: "#60A5FA", Type: "expense"},
	{ID: "travel", Name: "Travel", Icon: "airplane", Color: "#F472B6", Type: "expense"},
	{ID: "other_expense", Name: "Other", Icon: "ellipsis-horizontal", Color: "#9CA3AF", Type: "expense"},
}

// IncomeCategories is the ordered income catalog.
var IncomeCategories = []Category{
	{ID: "salary", Name: "Salary", Icon: "cash", Color: "#10B981", Type: "income"},
	{ID: "freelance", Name: "Freelance", Icon: "laptop", Color: "#3B82F6", Type: "income"},
	{ID: "business", Name: "Business", Icon: "briefcase", Color: "#8B5CF6", Type: "income"},
	{ID: "investment", Name: "Investment", Icon: "trending-up", Color: "#F59E0B", Type: "income"},
	{ID: "gift", Name: "Gift", Icon: "gift", Color: "#EC4899", Type: "income"},
	{ID: "other_income", Name: "Other", Icon: "ellipsis-horizontal", Color: "#9CA3AF", Type: "income"},
}

// byID indexes both catalogs. Built once at init; read-only afterwards.
var byID = func() map[string]*Category {
	m := make(map[string]*Category, len(ExpenseCategories)+len(IncomeCategories))
	for i := range ExpenseCategories {
		m[ExpenseCategories[i].ID] = &ExpenseCategories[i]
	}
	for i := range IncomeCategories {
		m[IncomeCategories[i].ID] = &IncomeCategories[i]
	}
	return m
}()

// ByID looks a category up across both catalogs. Returns nil on miss.
func ByID(id string) *Category {
	return byID[id]
}

// ForType returns the catalog matching a transaction type. Unknown types
// yield the expense catalog, matching the entry form's default.
func ForType(txType string) []Category {
	if txType == "income" {
		return IncomeCategories
	}
	return ExpenseCategories
}
