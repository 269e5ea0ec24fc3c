package config

import (
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// RE2's \s only covers ASCII; these classes cover all Unicode white space
const (
	ws    = `[\s\x0B\x{85}\p{Z}]`
	nonWS = `[^\s\x0B\x{85}\p{Z}]`
	addr  = nonWS + `+@` + nonWS + `+\.` + nonWS + `+`
)

var (
	// bare address: user@example.com
	emailRe = regexp.MustCompile(`^` + addr + `$`)

	// display-name form: "Frodo Baggins" <rts@example.com>
	namedEmailRe = regexp.MustCompile(`^("` + ws + `*)?(` + nonWS + `+` + ws + `+)*(` + nonWS + `+)` +
		ws + `*"?` + ws + `+<` + addr + `>$`)
)

// IsValidEmail reports whether email is a syntactically acceptable address,
// either bare or in display-name form. Surrounding whitespace is ignored.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	return emailRe.MatchString(email) || namedEmailRe.MatchString(email)
}

// CheckEmails validates a comma-delimited list of email addresses for the
// given header. On success the addresses are returned sorted and without
// duplicates. All invalid entries are reported, not just the first.
func CheckEmails(header, emails string) ([]string, error) {
	data := lo.FilterMap(strings.Split(emails, ","), func(w string, _ int) (string, bool) {
		w = strings.TrimSpace(w)
		return w, w != ""
	})
	if len(data) == 0 {
		return nil, &NoEmailsError{Header: header}
	}

	valid, invalid := lo.FilterReject(data, func(email string, _ int) bool {
		return IsValidEmail(email)
	})
	if len(invalid) > 0 {
		slices.Sort(invalid)
		return nil, &InvalidEmailsError{Header: header, Emails: invalid}
	}

	slices.Sort(valid)
	return slices.Compact(valid), nil
}
