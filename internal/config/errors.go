package config

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by Check
var (
	// ErrMissingFrom is returned when the general section has no From header
	ErrMissingFrom = errors.New("no *From* header in the general section")

	// ErrMissingSubject is returned when the general section has no Subject
	ErrMissingSubject = errors.New("no *Subject* in the general section")

	// ErrNoRecipients is returned when the recipients section is empty
	ErrNoRecipients = errors.New("no email recipients found in config file")
)

// MissingSectionError is returned when a required section is absent
type MissingSectionError struct {
	Name string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("no *%s* section in config file", e.Name)
}

// InvalidFromError is returned when the From header is not a valid email
type InvalidFromError struct {
	Value string
}

func (e *InvalidFromError) Error() string {
	return fmt.Sprintf("invalid *From* email: %s", e.Value)
}

// NoEmailsError is returned when an email list header holds no addresses
type NoEmailsError struct {
	Header string
}

func (e *NoEmailsError) Error() string {
	return fmt.Sprintf("no emails for *%s* header", e.Header)
}

// InvalidEmailsError lists every invalid address of an email list header.
// Emails is sorted.
type InvalidEmailsError struct {
	Header string
	Emails []string
}

func (e *InvalidEmailsError) Error() string {
	return fmt.Sprintf("invalid *%s* email(s): %s", e.Header, strings.Join(e.Emails, ", "))
}

// UnrecognizedDatumError is returned for a key the general section does not know
type UnrecognizedDatumError struct {
	Key string
}

func (e *UnrecognizedDatumError) Error() string {
	return fmt.Sprintf("invalid configuration datum: *%s*", e.Key)
}

// InvalidRecipientEmailError is returned when a recipient key is not a valid email
type InvalidRecipientEmailError struct {
	Email string
}

func (e *InvalidRecipientEmailError) Error() string {
	return fmt.Sprintf("invalid email: %s", e.Email)
}

// EmptyRecipientDataError is returned when a recipient line has no fields at all
type EmptyRecipientDataError struct {
	Email string
}

func (e *EmptyRecipientDataError) Error() string {
	return fmt.Sprintf("invalid data for email: %s", e.Email)
}

// InvalidRecipientDatumError is returned when a field is not a single key:-value pair
type InvalidRecipientDatumError struct {
	Field string
}

func (e *InvalidRecipientDatumError) Error() string {
	return fmt.Sprintf("invalid recipient data (%s)", e.Field)
}

// EmptyKeyError is returned for a field with a value but no key
type EmptyKeyError struct {
	Value string
}

func (e *EmptyKeyError) Error() string {
	return fmt.Sprintf("no key for datum (%s)", e.Value)
}

// EmptyValueError is returned for a field with a key but no value
type EmptyValueError struct {
	Key string
}

func (e *EmptyValueError) Error() string {
	return fmt.Sprintf("empty value for key (%s)", e.Key)
}

// RecipientDataError ties a recipient data failure to the owning email
type RecipientDataError struct {
	Email string
	Err   error
}

func (e *RecipientDataError) Error() string {
	return fmt.Sprintf("invalid recipient data for %s (%s)", e.Email, e.Err)
}

func (e *RecipientDataError) Unwrap() error {
	return e.Err
}
