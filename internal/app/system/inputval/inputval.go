// internal/app/system/inputval/inputval.go

// Package inputval validates decoded request bodies. Required-field
// checks report the first failing field in declaration order so every
// resource returns the same shape of validation error.
package inputval

import "strings"

// Required names a required JSON field and the label used in the error
// message.
type Required struct {
	Key   string
	Label string
}

// FirstMissing returns the label of the first required field that is
// absent, null, or a blank string in the decoded body. The bool is
// false when all required fields are present.
func FirstMissing(body map[string]any, fields []Required) (string, bool) {
	for _, f := range fields {
		v, ok := body[f.Key]
		if !ok || v == nil {
			return f.Label, true
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			return f.Label, true
		}
	}
	return "", false
}

// IsValidEmail reports whether s looks like a plain addr-spec email.
// Display-name forms ("Name <a@b>") and addresses with stray dots or
// whitespace are rejected. Single-label domains are allowed so dev
// setups like admin@localhost work.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t<>") {
		return false
	}
	at := strings.Count(s, "@")
	if at != 1 {
		return false
	}
	parts := strings.SplitN(s, "@", 2)
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return false
	}
	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") || strings.Contains(part, "..") {
			return false
		}
	}
	return true
}

// RatingInRange reports whether a testimonial rating is within 1-5.
func RatingInRange(rating int) bool {
	return rating >= 1 && rating <= 5
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6
