package export

import (
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"spendwise/internal/domain/category"
	"spendwise/internal/domain/transaction"
	"spendwise/internal/shared/format"
)

// ReportOptions control the HTML report used as the PDF source.
// IncludeChart is accepted for interface stability but ignored by the
// current pipeline.
type ReportOptions struct {
	Title           string
	Subtitle        string
	GroupByCategory bool
	IncludeChart    bool
	Currency        string
}

const (
	colorPositive = "#4CAF50"
	colorNegative = "#F44336"
	colorNeutral  = "#333333"
)

// Summary holds the report totals. Balance is income minus expenses.
type Summary struct {
	TotalIncome   float64
	TotalExpenses float64
	Balance       float64
}

// Summarize computes report totals: income sums income amounts, expenses
// sums absolute expense amounts, intermediate sums use exact decimals.
func Summarize(xs []*transaction.Transaction) Summary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range xs {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case transaction.TypeIncome:
			income = income.Add(amount)
		case transaction.TypeExpense:
			expenses = expenses.Add(amount.Abs())
		}
	}

	return Summary{
		TotalIncome:   income.InexactFloat64(),
		TotalExpenses: expenses.InexactFloat64(),
		Balance:       income.Sub(expenses).InexactFloat64(),
	}
}

type reportRow struct {
	Date        string
	Description string
	Category    string
	Type        string
	Amount      string
	Color       string
}

type reportGroup struct {
	Name          string
	Rows          []reportRow
	Subtotal      string
	SubtotalColor string
}

type reportData struct {
	Title         string
	Subtitle      string
	Income        string
	Expenses      string
	Balance       string
	IncomeColor   string
	ExpensesColor string
	BalanceColor  string
	Grouped       bool
	Groups        []reportGroup
	Rows          []reportRow
	Empty         bool
}

// BuildHTMLReport renders transactions into a printable HTML document.
// With GroupByCategory set, transactions are bucketed by category in order
// of first encounter; each bucket shows the signed sum of its members'
// stored amounts. Expense amounts are stored positive, so grouped
// subtotals come out positive as well; existing reports carry the same
// quirk and readers of both expect it.
func BuildHTMLReport(xs []*transaction.Transaction, opts ReportOptions) string {
	if opts.Title == "" {
		opts.Title = "Transaction Report"
	}
	if opts.Subtitle == "" {
		opts.Subtitle = "Generated on " + format.FormatLongDate(time.Now())
	}

	s := Summarize(xs)
	data := reportData{
		Title:         opts.Title,
		Subtitle:      opts.Subtitle,
		Income:        format.FormatCurrency(s.TotalIncome, opts.Currency),
		Expenses:      format.FormatCurrency(s.TotalExpenses, opts.Currency),
		Balance:       format.FormatCurrency(s.Balance, opts.Currency),
		IncomeColor:   colorFor(s.TotalIncome),
		ExpensesColor: colorFor(s.TotalExpenses),
		BalanceColor:  colorFor(s.Balance),
		Grouped:       opts.GroupByCategory,
		Empty:         len(xs) == 0,
	}

	if opts.GroupByCategory {
		data.Groups = groupRows(xs, opts.Currency)
	} else {
		for _, t := range xs {
			data.Rows = append(data.Rows, rowFor(t, opts.Currency))
		}
	}

	var b strings.Builder
	if err := reportTemplate.Execute(&b, data); err != nil {
		return ""
	}
	return b.String()
}

func rowFor(t *transaction.Transaction, currency string) reportRow {
	return reportRow{
		Date:        format.FormatShortDate(t.Date),
		Description: t.Description,
		Category:    categoryName(t.Category),
		Type:        t.Type,
		Amount:      format.FormatCurrency(t.Amount, currency),
		Color:       colorFor(t.Amount),
	}
}

// groupRows buckets transactions by category in first-encounter order.
func groupRows(xs []*transaction.Transaction, currency string) []reportGroup {
	type bucket struct {
		rows     []reportRow
		subtotal decimal.Decimal
	}

	order := []string{}
	buckets := map[string]*bucket{}

	for _, t := range xs {
		key := t.Category
		if key == "" {
			key = "Uncategorized"
		}
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
			order = append(order, key)
		}
		b.rows = append(b.rows, rowFor(t, currency))
		b.subtotal = b.subtotal.Add(decimal.NewFromFloat(t.Amount))
	}

	groups := make([]reportGroup, 0, len(order))
	for _, key := range order {
		b := buckets[key]
		subtotal := b.subtotal.InexactFloat64()
		groups = append(groups, reportGroup{
			Name:          categoryName(key),
			Rows:          b.rows,
			Subtotal:      format.FormatCurrency(subtotal, currency),
			SubtotalColor: colorFor(subtotal),
		})
	}
	return groups
}

func categoryName(id string) string {
	if id == "" || id == "Uncategorized" {
		return "Uncategorized"
	}
	if c := category.ByID(id); c != nil {
		return c.Name
	}
	return id
}

func colorFor(v float64) string {
	switch {
	case v > 0:
		return colorPositive
	case v < 0:
		return colorNegative
	default:
		return colorNeutral
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, Helvetica, Arial, sans-serif; margin: 24px; color: #333; }
  h1 { margin-bottom: 4px; }
  .subtitle { color: #777; margin-bottom: 24px; }
  .summary { display: flex; gap: 32px; margin-bottom: 24px; }
  .summary div { flex: 1; padding: 12px; border: 1px solid #e0e0e0; border-radius: 8px; }
  .summary .label { font-size: 12px; color: #777; text-transform: uppercase; }
  .summary .value { font-size: 20px; font-weight: 600; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 24px; }
  th, td { text-align: left; padding: 8px; border-bottom: 1px solid #e0e0e0; }
  th { font-size: 12px; color: #777; text-transform: uppercase; }
  .group-name { margin: 16px 0 8px; }
  .subtotal { font-weight: 600; }
  .empty { color: #777; font-style: italic; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="subtitle">{{.Subtitle}}</p>
<div class="summary">
  <div><div class="label">Total Income</div><div class="value" style="color: {{.IncomeColor}}">{{.Income}}</div></div>
  <div><div class="label">Total Expenses</div><div class="value" style="color: {{.ExpensesColor}}">{{.Expenses}}</div></div>
  <div><div class="label">Balance</div><div class="value" style="color: {{.BalanceColor}}">{{.Balance}}</div></div>
</div>
{{if .Empty}}<p class="empty">No transactions found</p>{{else}}{{if .Grouped}}{{range .Groups}}
<h3 class="group-name">{{.Name}}</h3>
<table>
  <tr><th>Date</th><th>Description</th><th>Type</th><th>Amount</th></tr>
  {{range .Rows}}<tr><td>{{.Date}}</td><td>{{.Description}}</td><td>{{.Type}}</td><td style="color: {{.Color}}">{{.Amount}}</td></tr>
  {{end}}<tr><td colspan="3" class="subtotal">Subtotal</td><td class="subtotal" style="color: {{.SubtotalColor}}">{{.Subtotal}}</td></tr>
</table>
{{end}}{{else}}
<table>
  <tr><th>Date</th><th>Description</th><th>Category</th><th>Type</th><th>Amount</th></tr>
  {{range .Rows}}<tr><td>{{.Date}}</td><td>{{.Description}}</td><td>{{.Category}}</td><td>{{.Type}}</td><td style="color: {{.Color}}">{{.Amount}}</td></tr>
  {{end}}</table>
{{end}}{{end}}</body>
</html>
`))
