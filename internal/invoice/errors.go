package invoice

import (
	"errors"
	"fmt"
)

// Common invoice construction and rendering errors.
var (
	// ErrLocaleNotSet is returned when a translation is requested
	// before a locale was configured on the invoice.
	ErrLocaleNotSet = errors.New("locale not set")

	// ErrTranslationKeyNotFound is returned when a translation key is
	// absent from the resolved locale table. Missing keys fail loudly;
	// there is no silent fallback string.
	ErrTranslationKeyNotFound = errors.New("translation key not found")

	// ErrCurrencyNotFound is returned when an unrecognized currency
	// code is passed to SetCurrency.
	ErrCurrencyNotFound = errors.New("currency not found")

	// ErrCurrencyNotSet is returned when currency formatting is
	// attempted before SetCurrency was called.
	ErrCurrencyNotSet = errors.New("currency not set")

	// ErrInvalidState is returned when an operation is called in the
	// wrong order, e.g. payment info before any product was added.
	ErrInvalidState = errors.New("invalid invoice state")

	// ErrMissingTaxID is returned by Render when taxed items exist but
	// no VAT id was configured.
	ErrMissingTaxID = errors.New("missing tax id")

	// ErrInvalidDate is returned when a zero or unparseable value is
	// passed where a calendar date is required.
	ErrInvalidDate = errors.New("invalid date")
)

// CurrencyNotFoundError reports the offending code alongside
// ErrCurrencyNotFound.
type CurrencyNotFoundError struct {
	Code string
}

func (e *CurrencyNotFoundError) Error() string {
	return fmt.Sprintf("currency not found: %q", e.Code)
}

func (e *CurrencyNotFoundError) Unwrap() error {
	return ErrCurrencyNotFound
}

// TranslationKeyError reports which key was missing from which locale
// table alongside ErrTranslationKeyNotFound.
type TranslationKeyError struct {
	Locale string
	Key    string
}

func (e *TranslationKeyError) Error() string {
	return fmt.Sprintf("translation key %q not found for locale %q", e.Key, e.Locale)
}

func (e *TranslationKeyError) Unwrap() error {
	return ErrTranslationKeyNotFound
}

// InvalidStateError wraps ErrInvalidState with a description of the
// ordering rule that was violated.
type InvalidStateError struct {
	Details string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid invoice state: %s", e.Details)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
