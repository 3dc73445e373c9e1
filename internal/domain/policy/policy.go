// Package policy implements the authorization rules enforced at the
// persistence boundary. Rules are declarative (path pattern, operation set,
// condition) tuples evaluated in order against a principal and the existing
// and incoming document state. The first matching rule whose condition
// passes allows the request; anything else is denied.
//
// Conditions within a single rule compose by AND. Where an operation needs
// both ownership and document validity (transaction create/update), the two
// checks live in one condition so that neither alone is sufficient.
package policy

import (
	"errors"
	"strings"
)

// ErrDenied is returned by repositories when the policy rejects an operation.
var ErrDenied = errors.New("permission denied")

// DemoEmail marks the distinguished demo principal, which has relaxed
// read/update privileges on any transaction.
const DemoEmail = "demo@example.com"

// Principal is an authenticated identity. A nil *Principal means the
// request is unauthenticated.
type Principal struct {
	UID   string
	Email string
}

// IsDemo reports whether this is the demo principal.
func (p *Principal) IsDemo() bool {
	return p != nil && p.Email == DemoEmail
}

// Operation is a bit set of document operations.
type Operation uint8

const (
	OpRead Operation = 1 << iota
	OpCreate
	OpUpdate
	OpDelete

	// OpWrite groups every mutating operation.
	OpWrite = OpCreate | OpUpdate | OpDelete
)

func (op Operation) String() string {
	switch op {
	case OpRead:
		return "read"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "write"
	}
}

// Request carries everything a rule condition may inspect. Existing is nil
// when the target document does not exist; Incoming is nil for reads and
// deletes.
type Request struct {
	Principal *Principal
	Operation Operation
	Path      string
	Existing  map[string]any
	Incoming  map[string]any
}

// Condition decides a matched request. params holds the values bound by
// the rule's path wildcards, keyed by wildcard name.
type Condition func(req *Request, params map[string]string) bool

// Rule matches a document path pattern and an operation set. Patterns use
// slash-separated segments; a segment wrapped in braces binds that position,
// e.g. "transactions/{txId}".
type Rule struct {
	segments []string
	ops      Operation
	allow    Condition
}

// NewRule compiles a path pattern into a rule.
func NewRule(pattern string, ops Operation, allow Condition) Rule {
	return Rule{
		segments: strings.Split(strings.Trim(pattern, "/"), "/"),
		ops:      ops,
		allow:    allow,
	}
}

// match binds the rule's wildcards against a concrete path.
func (r Rule) match(path string) (map[string]string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != len(r.segments) {
		return nil, false
	}
	var params map[string]string
	for i, seg := range r.segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if params == nil {
				params = make(map[string]string, 2)
			}
			params[seg[1:len(seg)-1]] = parts[i]
			continue
		}
		if seg != parts[i] {
			return nil, false
		}
	}
	return params, true
}

// Engine evaluates an ordered rule list with default deny.
type Engine struct {
	rules []Rule
}

// NewEngine builds an engine from rules, evaluated in the given order.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Allows reports whether any rule matching the request's path and
// operation accepts it. Unmatched paths and failed conditions deny.
func (e *Engine) Allows(req *Request) bool {
	for _, r := range e.rules {
		if r.ops&req.Operation == 0 {
			continue
		}
		params, ok := r.match(req.Path)
		if !ok {
			continue
		}
		if r.allow(req, params) {
			return true
		}
	}
	return false
}
