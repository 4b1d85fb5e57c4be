package model

import "fmt"

// Standard error codes surfaced in API responses
const (
	ErrCodeEmptyCart          = "EMPTY_CART"
	ErrCodeMissingDelivery    = "MISSING_DELIVERY_INFO"
	ErrCodeUnknownPlan        = "UNKNOWN_PLAN"
	ErrCodeInvalidMealType    = "INVALID_MEAL_TYPE"
	ErrCodeInvalidDietPref    = "INVALID_DIET_PREFERENCE"
	ErrCodeInvalidTransition  = "INVALID_STATUS_TRANSITION"
	ErrCodeInvalidLineItem    = "INVALID_LINE_ITEM"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodePersistenceFailure = "PERSISTENCE_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart               = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one item")
	ErrMissingDeliveryInfo     = NewDomainError(ErrCodeMissingDelivery, "Delivery address and phone number are required")
	ErrUnknownPlan             = NewDomainError(ErrCodeUnknownPlan, "Unknown subscription plan")
	ErrInvalidMealType         = NewDomainError(ErrCodeInvalidMealType, "Meal type is not a recognised meal slot")
	ErrInvalidDietPreference   = NewDomainError(ErrCodeInvalidDietPref, "Diet preference is not a recognised dietary tag")
	ErrInvalidStatusTransition = NewDomainError(ErrCodeInvalidTransition, "Order status transition is not permitted")
	ErrInvalidLineItem         = NewDomainError(ErrCodeInvalidLineItem, "Line item must have an id, a name and a non-negative price")
	ErrOrderNotFound           = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)

// PersistenceError wraps a storage-collaborator failure with the
// operation that failed. The underlying cause stays reachable via Unwrap.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps err as a persistence failure for op.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
