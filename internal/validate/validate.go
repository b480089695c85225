// Package validate evaluates record schemas at the store boundary so that
// invalid state in storage is structurally impossible.
package validate

import "github.com/go-playground/validator/v10"

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct checks a record against its declared schema tags.
func Struct(s any) error {
	return v.Struct(s)
}
