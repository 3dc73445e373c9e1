package policy

// DefaultRules returns the deployed rule set for user profiles and
// transactions. When demo is false, the demo principal gets no special
// treatment.
//
//   - users/{userId}: read/write for the owner (or demo).
//   - transactions/{txId} read: owner, demo, or document absent.
//   - transactions/{txId} create: owner of the incoming record, and the
//     record must be a valid transaction. One condition, both required.
//   - transactions/{txId} update: owner of the existing record (or demo,
//     or document absent), and the incoming record must be valid.
//   - transactions/{txId} delete: owner of the existing record only; the
//     demo principal cannot delete other users' records.
func DefaultRules(demo bool) []Rule {
	isDemo := func(p *Principal) bool { return demo && p.IsDemo() }

	return []Rule{
		NewRule("users/{userId}", OpRead|OpWrite, func(req *Request, params map[string]string) bool {
			if req.Principal == nil {
				return false
			}
			return req.Principal.UID == params["userId"] || isDemo(req.Principal)
		}),

		NewRule("transactions/{txId}", OpRead, func(req *Request, _ map[string]string) bool {
			if req.Principal == nil {
				return false
			}
			if req.Existing == nil {
				return true
			}
			return ownerOf(req.Existing) == req.Principal.UID || isDemo(req.Principal)
		}),

		NewRule("transactions/{txId}", OpCreate, func(req *Request, _ map[string]string) bool {
			if req.Principal == nil {
				return false
			}
			return ownerOf(req.Incoming) == req.Principal.UID && ValidTransactionDoc(req.Incoming)
		}),

		NewRule("transactions/{txId}", OpUpdate, func(req *Request, _ map[string]string) bool {
			if req.Principal == nil {
				return false
			}
			owned := req.Existing == nil ||
				ownerOf(req.Existing) == req.Principal.UID ||
				isDemo(req.Principal)
			return owned && ValidTransactionDoc(req.Incoming)
		}),

		NewRule("transactions/{txId}", OpDelete, func(req *Request, _ map[string]string) bool {
			if req.Principal == nil || req.Existing == nil {
				return false
			}
			return ownerOf(req.Existing) == req.Principal.UID
		}),
	}
}

// ValidTransactionDoc is the persistence-side mirror of the form-level
// transaction validation: required fields present, a known type tag, and a
// positive numeric amount.
func ValidTransactionDoc(doc map[string]any) bool {
	if doc == nil {
		return false
	}
	for _, field := range []string{"userId", "type", "category", "date", "description"} {
		s, ok := doc[field].(string)
		if !ok || s == "" {
			return false
		}
	}
	txType := doc["type"].(string)
	if txType != "income" && txType != "expense" {
		return false
	}
	amount, ok := docNumber(doc["amount"])
	return ok && amount > 0
}

func ownerOf(doc map[string]any) string {
	if doc == nil {
		return ""
	}
	uid, _ := doc["userId"].(string)
	return uid
}

// docNumber accepts the numeric types the document store hands back.
func docNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
