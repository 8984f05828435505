// internal/authz/authz.go
package authz

import (
	"strings"
)

// Access is the class of caller a rule admits.
type Access int

const (
	// AccessPublic admits everyone.
	AccessPublic Access = iota
	// AccessAnonymous admits only callers without a session.
	AccessAnonymous
	// AccessAuthenticated admits any logged-in caller.
	AccessAuthenticated
	// AccessRoles admits callers holding at least one listed role.
	AccessRoles
)

// Rule maps a method and path pattern to the access class required to
// pass. Patterns are literal path segments, with "*" matching one
// segment and a trailing "**" matching any remainder.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
	Roles   []string
}

// Decision is the outcome of evaluating a request against the table.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated means the caller must log in first.
	DenyUnauthenticated
	// DenyForbidden means the caller is logged in but lacks a role,
	// or hit an anonymous-only path while authenticated.
	DenyForbidden
)

// Table is an ordered authorization table. The first matching rule
// wins; requests matching no rule require authentication, mirroring
// the original deny-by-default configuration.
type Table struct {
	rules []Rule
}

func NewTable(rules []Rule) *Table {
	return &Table{rules: rules}
}

// Decide evaluates a request. roles is the caller's authority set,
// nil or empty for anonymous callers. Decide is a pure function of
// its inputs.
func (t *Table) Decide(method, path string, authenticated bool, roles []string) Decision {
	for _, rule := range t.rules {
		if rule.Method != "" && rule.Method != method {
			continue
		}
		if !matchPattern(rule.Pattern, path) {
			continue
		}

		switch rule.Access {
		case AccessPublic:
			return Allow
		case AccessAnonymous:
			if authenticated {
				return DenyForbidden
			}
			return Allow
		case AccessAuthenticated:
			if !authenticated {
				return DenyUnauthenticated
			}
			return Allow
		case AccessRoles:
			if !authenticated {
				return DenyUnauthenticated
			}
			for _, have := range roles {
				for _, want := range rule.Roles {
					if have == want {
						return Allow
					}
				}
			}
			return DenyForbidden
		}
	}

	if !authenticated {
		return DenyUnauthenticated
	}
	return Allow
}

func matchPattern(pattern, path string) bool {
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	for i, part := range patternParts {
		if part == "**" {
			return true
		}
		if i >= len(pathParts) {
			return false
		}
		if part != "*" && part != pathParts[i] {
			return false
		}
	}

	return len(patternParts) == len(pathParts)
}
