// Package errors provides the standardized error taxonomy for dataset generation.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Configuration errors: the supplied rules/config are unusable. Generation
// never starts when one of these is raised.
const (
	ErrCodeInvalidDistribution ErrorCode = "INVALID_DISTRIBUTION"
	ErrCodeEmptyRange          ErrorCode = "EMPTY_RANGE"
	ErrCodeInvalidMarkovTable  ErrorCode = "INVALID_MARKOV_TABLE"
	ErrCodeMissingRuleSection  ErrorCode = "MISSING_RULE_SECTION"
	ErrCodeInvalidConfigValue  ErrorCode = "INVALID_CONFIG_VALUE"
)

// Integrity errors: an internal cross-reference invariant was violated.
// These indicate an engine bug and abort the run.
const (
	ErrCodeUnknownReference ErrorCode = "UNKNOWN_REFERENCE"
	ErrCodeDuplicateID      ErrorCode = "DUPLICATE_ID"
	ErrCodePartyMismatch    ErrorCode = "PARTY_MISMATCH"
)

// ConfigurationError reports degenerate or contradictory generation rules.
type ConfigurationError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *ConfigurationError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("ConfigurationError[%s]: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("ConfigurationError[%s]: %s (%s)", e.Code, e.Message, e.Details)
}

// DataIntegrityError reports a cross-entity reference that does not resolve
// within the same generation run.
type DataIntegrityError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *DataIntegrityError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("DataIntegrityError[%s]: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("DataIntegrityError[%s]: %s (%s)", e.Code, e.Message, e.Details)
}

// ==========================
// Constructors
// ==========================

// NewInvalidDistributionError reports a weight table whose weights do not sum
// to a positive total, or an empty option list.
func NewInvalidDistributionError(details string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeInvalidDistribution,
		Message: "weighted distribution is degenerate",
		Details: details,
	}
}

// NewEmptyRangeError reports a numeric range with min > max.
func NewEmptyRangeError(field string, min, max float64) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeEmptyRange,
		Message: "numeric range is empty",
		Details: fmt.Sprintf("field: %s, min: %v, max: %v", field, min, max),
	}
}

// NewInvalidMarkovTableError reports a transition table missing a state row or
// containing a degenerate row.
func NewInvalidMarkovTableError(details string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeInvalidMarkovTable,
		Message: "markov transition table is invalid",
		Details: details,
	}
}

// NewMissingRuleSectionError reports a required rules section that is absent.
func NewMissingRuleSectionError(section string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeMissingRuleSection,
		Message: "required rules section is missing or empty",
		Details: fmt.Sprintf("section: %s", section),
	}
}

// NewInvalidConfigValueError reports a single out-of-domain config value.
func NewInvalidConfigValueError(field, details string) *ConfigurationError {
	return &ConfigurationError{
		Code:    ErrCodeInvalidConfigValue,
		Message: fmt.Sprintf("invalid value for %s", field),
		Details: details,
	}
}

// NewUnknownReferenceError reports a generated record pointing at an id that
// was never registered in the run.
func NewUnknownReferenceError(entity, field, id string) *DataIntegrityError {
	return &DataIntegrityError{
		Code:    ErrCodeUnknownReference,
		Message: "reference to an entity not generated in this run",
		Details: fmt.Sprintf("entity: %s, field: %s, id: %s", entity, field, id),
	}
}

// NewDuplicateIDError reports an identifier issued twice within one run.
func NewDuplicateIDError(entity, id string) *DataIntegrityError {
	return &DataIntegrityError{
		Code:    ErrCodeDuplicateID,
		Message: "identifier reused within a generation run",
		Details: fmt.Sprintf("entity: %s, id: %s", entity, id),
	}
}

// NewPartyMismatchError reports an interaction whose parties do not match the
// owning opportunity.
func NewPartyMismatchError(interactionID, opportunityID string) *DataIntegrityError {
	return &DataIntegrityError{
		Code:    ErrCodePartyMismatch,
		Message: "interaction parties do not match owning opportunity",
		Details: fmt.Sprintf("interaction: %s, opportunity: %s", interactionID, opportunityID),
	}
}

// ==========================
// Utility Functions
// ==========================

// IsConfigurationError checks whether err is (or wraps) a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsDataIntegrityError checks whether err is (or wraps) a DataIntegrityError.
func IsDataIntegrityError(err error) bool {
	var de *DataIntegrityError
	return errors.As(err, &de)
}

// AsConfigurationError extracts the ConfigurationError wrapped by err.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	ok := errors.As(err, &ce)
	return ce, ok
}

// AsDataIntegrityError extracts the DataIntegrityError wrapped by err.
func AsDataIntegrityError(err error) (*DataIntegrityError, bool) {
	var de *DataIntegrityError
	ok := errors.As(err, &de)
	return de, ok
}
