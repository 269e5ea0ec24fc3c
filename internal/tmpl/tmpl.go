/*
Package tmpl provides placeholder extraction, recipient cross-validation and
rendering of mail merge templates.

Placeholders have the form %KEY% where KEY is a run of word characters.
*/
package tmpl

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/oarkflow/mailmerge"
	"github.com/oarkflow/mailmerge/internal/config"
)

// Auto-keys are filled in from the recipient and the tool itself; they are
// never required in recipient data
const (
	KeyEmail       = "_EA"
	KeyFirstName   = "_FN"
	KeyLastName    = "_LN"
	KeyToolName    = "_TN"
	KeyToolVersion = "_TV"
)

var autoKeys = map[string]struct{}{
	KeyEmail:       {},
	KeyFirstName:   {},
	KeyLastName:    {},
	KeyToolName:    {},
	KeyToolVersion: {},
}

// placeholderRe matches %KEY%; letters, letter numbers, marks, decimal
// digits, connector punctuation and the join controls make up KEY
var placeholderRe = regexp.MustCompile(`%([\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}\x{200C}\x{200D}]+)%`)

// Template holds the template text and the distinct placeholder keys in it
type Template struct {
	text string
	keys map[string]struct{}
}

// New creates a template from text
func New(text string) *Template {
	t := &Template{
		text: text,
		keys: make(map[string]struct{}),
	}
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		t.keys[m[1]] = struct{}{}
	}
	return t
}

// Load reads a template file
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	return New(string(data)), nil
}

// Text returns the unmodified template text
func (t *Template) Text() string {
	return t.text
}

// Keys returns the placeholder keys, sorted
func (t *Template) Keys() []string {
	keys := lo.Keys(t.keys)
	slices.Sort(keys)
	return keys
}

// Has reports whether the template references key
func (t *Template) Has(key string) bool {
	_, ok := t.keys[key]
	return ok
}

// RequiredKeys returns the sorted keys every recipient has to supply, i.e.
// all keys except the auto-keys
func (t *Template) RequiredKeys() []string {
	return lo.Reject(t.Keys(), func(k string, _ int) bool {
		return IsAutoKey(k)
	})
}

// IsAutoKey reports whether key is one of the auto-keys
func IsAutoKey(key string) bool {
	_, ok := autoKeys[key]
	return ok
}

// MissingKeys returns one diagnostic per recipient lacking any of the
// required keys, in recipient order. It is empty when all recipients are
// complete.
func (t *Template) MissingKeys(recipients []config.Recipient) []string {
	required := t.RequiredKeys()
	var problems []string
	for _, r := range recipients {
		missing := lo.Reject(required, func(k string, _ int) bool {
			_, ok := r.Data[k]
			return ok
		})
		if len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s is missing the following key(s): %s",
				r.Email, strings.Join(missing, ", ")))
		}
	}
	return problems
}

// CheckRecipients verifies that every recipient supplies every required key.
// The returned *MissingKeysError lists all incomplete recipients.
func (t *Template) CheckRecipients(recipients []config.Recipient) error {
	if problems := t.MissingKeys(recipients); len(problems) > 0 {
		return &MissingKeysError{Problems: problems}
	}
	return nil
}

// Render substitutes the placeholders of s for the given recipient.
// Recipient data takes precedence over auto-keys; unknown placeholders are
// left as they are.
func Render(s string, r config.Recipient) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		key := m[1 : len(m)-1]
		if val, ok := r.Data[key]; ok {
			return val
		}
		if val, ok := autoValue(key, r); ok {
			return val
		}
		return m
	})
}

// Render substitutes the template's placeholders for the given recipient
func (t *Template) Render(r config.Recipient) string {
	return Render(t.text, r)
}

func autoValue(key string, r config.Recipient) (string, bool) {
	switch key {
	case KeyEmail:
		return r.Email, true
	case KeyFirstName:
		return r.FirstName(), true
	case KeyLastName:
		return r.LastName(), true
	case KeyToolName:
		return mailmerge.Name, true
	case KeyToolVersion:
		return mailmerge.Version, true
	}
	return "", false
}

// MissingKeysError is returned by CheckRecipients
type MissingKeysError struct {
	Problems []string
}

func (e *MissingKeysError) Error() string {
	return strings.Join(e.Problems, "; ")
}
