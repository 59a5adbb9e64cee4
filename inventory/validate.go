package inventory

import (
	"fmt"
	"math"
	"strings"
)

// ValidationError describes a payload field that violates an item constraint.
type ValidationError struct {
	Field   string `json:"field"`
	Value   any    `json:"value"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func validateName(name string) *ValidationError {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Value: name, Message: "must not be empty"}
	}
	return nil
}

func validateQuantity(q int) *ValidationError {
	if q < 0 {
		return &ValidationError{Field: "quantity", Value: q, Message: "must be >= 0"}
	}
	return nil
}

func validatePrice(p float64) *ValidationError {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return &ValidationError{Field: "price", Value: p, Message: "must be a finite number"}
	}
	if p < 0 {
		return &ValidationError{Field: "price", Value: p, Message: "must be >= 0"}
	}
	return nil
}

func validateAdd(in AddItemInput) *ValidationError {
	if err := validateName(in.Name); err != nil {
		return err
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return err
	}
	return validatePrice(in.Price)
}

// validateUpdate checks only the fields that are set.
func validateUpdate(in UpdateItemInput) *ValidationError {
	if in.Name != nil {
		if err := validateName(*in.Name); err != nil {
			return err
		}
	}
	if in.Quantity != nil {
		if err := validateQuantity(*in.Quantity); err != nil {
			return err
		}
	}
	if in.Price != nil {
		return validatePrice(*in.Price)
	}
	return nil
}
