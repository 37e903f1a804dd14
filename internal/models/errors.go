package models

import "errors"

// Error taxonomy for meal plan operations. Callers match with errors.Is;
// every failure is recoverable at the command layer.
var (
	ErrInvalidMealType   = errors.New("invalid meal type")
	ErrInvalidDay        = errors.New("invalid day")
	ErrEmptyField        = errors.New("empty field")
	ErrInvalidField      = errors.New("invalid field")
	ErrMealNotFound      = errors.New("meal not found")
	ErrMalformedDocument = errors.New("malformed meal plan document")
	ErrMalformedJSON     = errors.New("malformed meal plan json")
)
