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

package wire

import (
	"encoding/json"
	"errors"

	"github.com/optakt/xrpl-query/models/failure"
)

// Required decodes the field with the given key into dst. A missing or null
// field results in a `failure.MissingField` error; dst is left untouched.
func Required(fields Fields, key string, dst interface{}) error {
	if !fields.Has(key) {
		return failure.MissingField{
			Path:        key,
			Description: failure.NewDescription("required field is absent"),
		}
	}
	return Decode(key, fields[key], dst)
}

// Optional decodes the field with the given key into dst if it is present with
// a non-null value, and reports whether it was.
func Optional(fields Fields, key string, dst interface{}) (bool, error) {
	if !fields.Has(key) {
		return false, nil
	}
	err := Decode(key, fields[key], dst)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Decode decodes a raw value into dst, converting decoding errors into field
// errors for the given path.
func Decode(path string, raw json.RawMessage, dst interface{}) error {

	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			path = path + "." + typeErr.Field
		}
		return failure.InvalidField{
			Path: path,
			Description: failure.NewDescription("value has unexpected type",
				failure.WithString("expected", typeErr.Type.String()),
				failure.WithString("got", typeErr.Value),
			),
		}
	}

	// Custom decoders may already report field errors relative to the value.
	if len(failure.Paths(err)) > 0 {
		return failure.Within(path, err)
	}

	return failure.InvalidField{
		Path:        path,
		Description: failure.NewDescription("value could not be decoded", failure.WithErr(err)),
	}
}
