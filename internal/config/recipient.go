package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// datumDelimiter separates key and value in a recipient field, e.g. "ORG:-EFF"
const datumDelimiter = ":-"

// Recipient holds per-recipient data
type Recipient struct {
	// Email is the recipient's address
	Email string

	// Names are the whitespace separated tokens of the name field; the first
	// is the first name, the rest is the surname
	Names []string

	// Data holds the optional key:-value metadata of the recipient
	Data map[string]string
}

// FirstName returns the first name token, if any
func (r Recipient) FirstName() string {
	if len(r.Names) == 0 {
		return ""
	}
	return r.Names[0]
}

// LastName returns the remaining name tokens joined by a space
func (r Recipient) LastName() string {
	if len(r.Names) < 2 {
		return ""
	}
	return strings.Join(r.Names[1:], " ")
}

// String renders the recipient with its data sorted by key
func (r Recipient) String() string {
	data := lo.Map(sortedKeys(r.Data), func(k string, _ int) string {
		return fmt.Sprintf("%s => %s", k, r.Data[k])
	})
	return fmt.Sprintf("email: %s, names: %s, data: %s",
		r.Email, strings.Join(r.Names, ", "), strings.Join(data, ", "))
}

// ParseRecipientData parses the key:-value fields of a recipient line (the
// names field already removed). Fields are processed in order, so a repeated
// key keeps its last value. Blank fields and fields with both key and value
// empty are skipped.
func ParseRecipientData(fields []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			continue
		}

		parts := strings.Split(field, datumDelimiter)
		if len(parts) != 2 {
			return nil, &InvalidRecipientDatumError{Field: field}
		}

		key, val := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		switch {
		case key == "" && val == "":
			continue
		case key == "":
			return nil, &EmptyKeyError{Value: val}
		case val == "":
			return nil, &EmptyValueError{Key: key}
		}
		result[key] = val
	}
	return result, nil
}

// parseRecipient builds a recipient from its email and raw line, e.g.
// "John Doe Jr.|ORG:-EFF|TITLE:-PhD"
func parseRecipient(email, line string) (Recipient, error) {
	if !IsValidEmail(email) {
		return Recipient{}, &InvalidRecipientEmailError{Email: email}
	}

	fields := lo.FilterMap(strings.Split(line, "|"), func(w string, _ int) (string, bool) {
		w = strings.TrimSpace(w)
		return w, w != ""
	})
	if len(fields) == 0 {
		return Recipient{}, &EmptyRecipientDataError{Email: email}
	}

	data, err := ParseRecipientData(fields[1:])
	if err != nil {
		return Recipient{}, &RecipientDataError{Email: email, Err: err}
	}

	return Recipient{
		Email: email,
		Names: strings.Fields(fields[0]),
		Data:  data,
	}, nil
}
