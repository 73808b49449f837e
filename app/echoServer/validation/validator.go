// Package validation adapts go-playground/validator to echo's Validator
// interface. Installed on the server as e.Validator so handlers can call
// c.Validate; the entity controllers run their shared *validator.Validate
// directly.
package validation

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
