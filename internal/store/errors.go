package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity is returned when a consumption quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidSeverity is returned when a fault severity is not one of the
	// accepted values.
	ErrInvalidSeverity = errors.New("invalid severity")

	// ErrNegativeStock is returned when a manual stock adjustment would take
	// the stock counter below zero.
	ErrNegativeStock = errors.New("stok negatif olamaz")
)

// PartNotFoundError is returned when a work-order line references a part that
// does not exist.
type PartNotFoundError struct {
	PartID int64
}

func (e *PartNotFoundError) Error() string {
	return fmt.Sprintf("part %d bulunamadı", e.PartID)
}

// InsufficientStockError is returned when a part's stock cannot cover the
// requested quantity. Have is the stock observed inside the failing
// transaction; nothing has been deducted when this error is returned.
type InsufficientStockError struct {
	PartName string
	Have     int
	Want     int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok yetersiz: %s (elde %d, istenen %d)", e.PartName, e.Have, e.Want)
}

// FieldError describes a single invalid or missing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates field-level validation failures detected before
// any transaction is opened.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed (%d errors)", len(e.Errors))
}

func (e *ValidationErrors) add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}
