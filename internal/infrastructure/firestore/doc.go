package firestore

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"spendwise/internal/domain/transaction"
	"spendwise/internal/domain/user"
)

// docFromTransaction flattens a transaction into the stored document shape.
// Dates are stored as "2006-01-02" strings so the deployed rules can check
// them as plain fields.
func docFromTransaction(t *transaction.Transaction) map[string]any {
	doc := map[string]any{
		"userId":      t.UserID,
		"amount":      t.Amount,
		"type":        t.Type,
		"category":    t.Category,
		"date":        t.Date.String(),
		"description": t.Description,
		"createdAt":   t.CreatedAt,
	}
	if t.Note != "" {
		doc["note"] = t.Note
	}
	return doc
}

func transactionFromDoc(id string, doc map[string]any) (*transaction.Transaction, error) {
	t := &transaction.Transaction{
		ID:          id,
		UserID:      docString(doc, "userId"),
		Type:        docString(doc, "type"),
		Category:    docString(doc, "category"),
		Description: docString(doc, "description"),
		Note:        docString(doc, "note"),
	}

	switch v := doc["amount"].(type) {
	case float64:
		t.Amount = v
	case int64:
		t.Amount = float64(v)
	default:
		return nil, fmt.Errorf("document %s: amount has unexpected type %T", id, doc["amount"])
	}

	if raw := docString(doc, "date"); raw != "" {
		date, err := civil.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("document %s: parsing date %q: %w", id, raw, err)
		}
		t.Date = date
	}

	if created, ok := doc["createdAt"].(time.Time); ok {
		t.CreatedAt = created
	}

	return t, nil
}

func docFromProfile(p *user.Profile) map[string]any {
	doc := map[string]any{
		"email":     p.Email,
		"createdAt": p.CreatedAt,
		"updatedAt": p.UpdatedAt,
	}
	if p.DisplayName != "" {
		doc["displayName"] = p.DisplayName
	}
	if p.Currency != "" {
		doc["currency"] = p.Currency
	}
	return doc
}

func profileFromDoc(uid string, doc map[string]any) *user.Profile {
	p := &user.Profile{
		UID:         uid,
		Email:       docString(doc, "email"),
		DisplayName: docString(doc, "displayName"),
		Currency:    docString(doc, "currency"),
	}
	if created, ok := doc["createdAt"].(time.Time); ok {
		p.CreatedAt = created
	}
	if updated, ok := doc["updatedAt"].(time.Time); ok {
		p.UpdatedAt = updated
	}
	return p
}

func docString(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}
