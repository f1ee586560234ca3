package validation

import (
	"net/mail"
	"strings"
)

// Violations maps a field name to its first error message. Every rule in
// a form's rule list runs, so a bad submission reports all broken fields
// at once instead of stopping at the first.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) add(field, msg string) {
	if _, ok := v[field]; !ok {
		v[field] = msg
	}
}

// Rule is one validation step; rules mutate the shared Violations map.
type Rule func(v Violations)

func runAll(rules []Rule) Violations {
	v := Violations{}
	for _, r := range rules {
		r(v)
	}
	return v
}

// Basic validators

func required(field, value, msg string) Rule {
	return func(v Violations) {
		if strings.TrimSpace(value) == "" {
			v.add(field, msg)
		}
	}
}

func validEmail(field, value string) Rule {
	return func(v Violations) {
		if strings.TrimSpace(value) == "" {
			return // presence handled by a required rule
		}
		if _, err := mail.ParseAddress(value); err != nil {
			v.add(field, "Enter a valid email address.")
		}
	}
}

func oneOf(field, value string, allowed []string, msg string) Rule {
	return func(v Violations) {
		if value == "" {
			return
		}
		for _, a := range allowed {
			if value == a {
				return
			}
		}
		v.add(field, msg)
	}
}
