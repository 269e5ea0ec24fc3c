/*
Package config provides parsing and validation of mail merge campaign
configurations.

A configuration consists of a general section holding the email headers and a
recipients section mapping each recipient's email address to a line of the
form

	First Last|KEY:-value|KEY2:-value2
*/
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/oarkflow/mailmerge/internal/source"
)

// Section names
const (
	SectionGeneral    = "general"
	SectionRecipients = "recipients"
)

// Config holds the contents of a campaign config after it was parsed
// successfully
type Config struct {
	// From is the 'From' email header value
	From string

	// Subject is the email subject, it may contain placeholders
	Subject string

	// Cc is the sorted list of 'Cc' addresses
	Cc []string

	// ReplyTo is the sorted list of 'Reply-To' addresses
	ReplyTo []string

	// Recipients are sorted by email address
	Recipients []Recipient
}

// String renders the config on a single line
func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "from: %s, subject: %s", c.From, c.Subject)
	if len(c.Cc) > 0 {
		fmt.Fprintf(&b, ", cc: %s", strings.Join(c.Cc, ", "))
	}
	if len(c.ReplyTo) > 0 {
		fmt.Fprintf(&b, ", replyto: %s", strings.Join(c.ReplyTo, ", "))
	}
	rs := lo.Map(c.Recipients, func(r Recipient, _ int) string {
		return "{" + r.String() + "}"
	})
	fmt.Fprintf(&b, ", recipients: %s", strings.Join(rs, ", "))
	return b.String()
}

// Load loads the given config files, layering later files over earlier
// ones, and validates the result
func Load(paths ...string) (*Config, error) {
	sections, err := source.LoadFiles(paths...)
	if err != nil {
		return nil, err
	}
	return Validate(sections)
}

// Validate runs Check and then parses the sections into a Config
func Validate(sections source.Sections) (*Config, error) {
	if _, err := Check(sections); err != nil {
		return nil, err
	}
	return Parse(sections)
}

// Check is a cheap sanity check to run before Parse. It makes sure both
// sections exist, the general section has a From and a Subject and there is
// at least one recipient. It returns the number of recipients.
func Check(sections source.Sections) (int, error) {
	general, ok := sections.Section(SectionGeneral)
	if !ok {
		return 0, &MissingSectionError{Name: SectionGeneral}
	}
	if !hasAny(general, "From", "from") {
		return 0, ErrMissingFrom
	}
	if !hasAny(general, "Subject", "subject") {
		return 0, ErrMissingSubject
	}

	recipients, ok := sections.Section(SectionRecipients)
	if !ok {
		return 0, &MissingSectionError{Name: SectionRecipients}
	}
	if len(recipients) == 0 {
		return 0, ErrNoRecipients
	}
	return len(recipients), nil
}

// Parse parses the general section first and the recipients second. It
// assumes Check passed.
func Parse(sections source.Sections) (*Config, error) {
	cfg, err := parseGeneral(sections[SectionGeneral])
	if err != nil {
		return nil, err
	}
	cfg.Recipients, err = parseRecipients(sections[SectionRecipients])
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseGeneral(section source.Section) (*Config, error) {
	cfg := &Config{}
	for _, key := range sortedKeys(section) {
		val := section[key]
		var err error
		switch key {
		case "From", "from":
			if !IsValidEmail(val) {
				return nil, &InvalidFromError{Value: val}
			}
			cfg.From = val
		case "Reply-To", "Reply-to", "reply-to":
			cfg.ReplyTo, err = CheckEmails("Reply-To", val)
		case "cc", "Cc", "CC":
			cfg.Cc, err = CheckEmails(key, val)
		case "Subject", "subject":
			cfg.Subject = val
		default:
			return nil, &UnrecognizedDatumError{Key: key}
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// parseRecipients visits the emails in sorted order so the result is sorted
// by email
func parseRecipients(section source.Section) ([]Recipient, error) {
	result := make([]Recipient, 0, len(section))
	for _, email := range sortedKeys(section) {
		r, err := parseRecipient(email, section[email])
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}

func hasAny(section source.Section, keys ...string) bool {
	return lo.SomeBy(keys, func(k string) bool {
		_, ok := section[k]
		return ok
	})
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
