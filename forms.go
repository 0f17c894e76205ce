// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"fmt"
	"regexp"

	"github.com/hashicorp/go-multierror"
)

// A Validator inspects one submitted field value. The field name is passed
// in so the returned error can identify the offending field.
type Validator func(name, value string) error

// Field is one input of a Form together with its validators, run in order.
type Field struct {
	Name       string
	Validators []Validator
}

// Form is a declarative description of an HTML form: the fields it expects
// and how to validate them. Build it once at startup next to the route
// table.
type Form struct {
	Fields []Field
}

func NewForm(fields ...Field) *Form {
	return &Form{Fields: fields}
}

func NewField(name string, validators ...Validator) Field {
	return Field{Name: name, Validators: validators}
}

// Validate runs every validator of every field against the submitted
// parameters and aggregates all failures, so a response can report every
// problem with a submission at once. Returns nil when the form is valid.
func (f *Form) Validate(p Params) error {
	var result *multierror.Error
	for _, field := range f.Fields {
		value := p[field.Name]
		for _, validate := range field.Validators {
			if err := validate(field.Name, value); err != nil {
				result = multierror.Append(result, err)
				break
			}
		}
	}
	return result.ErrorOrNil()
}

// Required rejects missing and empty values.
func Required(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// loose enough for a contact form; full RFC 5322 is out of scope here
var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email rejects values that do not look like an email address. Empty
// values pass so optional email fields stay optional; combine with
// Required when the field must be present.
func Email(name, value string) error {
	if value == "" {
		return nil
	}
	if !emailRegexp.MatchString(value) {
		return fmt.Errorf("%s is not a valid email address", name)
	}
	return nil
}
