// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package validate

import (
	"encoding/hex"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/optakt/xrpl-query/models/failure"
)

// Lengths of the fixed-size hex identifiers, in characters.
const (
	HashLength    = 64
	TokenIDLength = 64
)

// Validation tags used on wire types and for single values.
const (
	TagHexBytes = "hexbytes"
	TagHash     = "len=64,hexbytes"
	TagTokenID  = "len=64,hexbytes"
	TagAccount  = "required"
	TagShortcut = "oneof=validated closed current"
)

var validate = newValidator()

func newValidator() *validator.Validate {

	v := validator.New()

	// Report fields under their wire name, so that the path of a validation
	// error matches the path of a decoding error for the same field.
	v.RegisterTagNameFunc(wireName)

	// The tag is only registered once with a known-good function, so it can
	// not fail.
	_ = v.RegisterValidation(TagHexBytes, hexBytes)

	return v
}

// Struct validates the value against its `validate` tags. Every failing field
// results in a `failure.InvalidField` error, named after the field's wire name.
func Struct(value interface{}) error {

	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return failure.InvalidField{
			Description: failure.NewDescription("value could not be validated", failure.WithErr(err)),
		}
	}

	var errs *multierror.Error
	for _, verr := range verrs {
		errs = multierror.Append(errs, fieldError(verr.Field(), verr))
	}

	return errs.ErrorOrNil()
}

// Var validates a single value found at the given path against a tag.
func Var(path string, value interface{}, tag string) error {

	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return failure.InvalidField{
			Path:        path,
			Description: failure.NewDescription("value could not be validated", failure.WithErr(err)),
		}
	}

	return fieldError(path, verrs[0])
}

// Hash checks that the value is a hex-encoded ledger hash.
func Hash(path string, hash string) error {
	return Var(path, hash, TagHash)
}

// TokenID checks that the value is a hex-encoded token identifier.
func TokenID(path string, id string) error {
	return Var(path, id, TagTokenID)
}

// Account checks that an account identifier was given.
func Account(path string, account string) error {
	return Var(path, account, TagAccount)
}

func fieldError(path string, verr validator.FieldError) failure.InvalidField {
	fields := []failure.FieldFunc{
		failure.WithString("rule", verr.Tag()),
	}
	if verr.Param() != "" {
		fields = append(fields, failure.WithString("param", verr.Param()))
	}
	if value, ok := verr.Value().(string); ok {
		fields = append(fields, failure.WithString("value", value))
	}
	return failure.InvalidField{
		Path:        path,
		Description: failure.NewDescription("value is malformed", fields...),
	}
}

// hexBytes accepts even-length hexadecimal strings of either case, including
// the empty string.
func hexBytes(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	_, err := hex.DecodeString(field.String())
	return err == nil
}

func wireName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
