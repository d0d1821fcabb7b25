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
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/optakt/xrpl-query/models/failure"
)

// Fields is a flat JSON object keyed by wire name. Request bodies are built by
// merging the fields of each of their components, and response bodies are
// parsed into fields before each component picks the keys it owns.
type Fields map[string]json.RawMessage

// Set encodes the value and stores it under the given key.
func (f Fields) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode field %s: %w", key, err)
	}
	f[key] = raw
	return nil
}

// Has returns whether the key is present with a non-null value.
func (f Fields) Has(key string) bool {
	raw, ok := f[key]
	return ok && !isNull(raw)
}

// Keys returns the keys of the fields in sorted order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Merge flattens the given parts into a single set of fields. Every key may
// only be provided by one part; all collisions are reported together.
func Merge(parts ...Fields) (Fields, error) {

	merged := make(Fields)
	var errs *multierror.Error
	for index, part := range parts {
		for _, key := range part.Keys() {
			_, ok := merged[key]
			if ok {
				errs = multierror.Append(errs, failure.DuplicateField{
					Key:         key,
					Description: failure.NewDescription("key is provided by more than one body component", failure.WithInt("component", index)),
				})
				continue
			}
			merged[key] = part[key]
		}
	}

	err := errs.ErrorOrNil()
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// Marshal encodes the fields as a JSON object with sorted keys.
func Marshal(fields Fields) ([]byte, error) {
	if fields == nil {
		fields = Fields{}
	}
	data, err := json.Marshal(map[string]json.RawMessage(fields))
	if err != nil {
		return nil, fmt.Errorf("could not encode fields: %w", err)
	}
	return data, nil
}

// Parse decodes a JSON object body into its top-level fields.
func Parse(data []byte) (Fields, error) {

	var fields Fields
	err := json.Unmarshal(data, &fields)
	if err != nil {
		return nil, failure.InvalidField{
			Description: failure.NewDescription("body is not a JSON object", failure.WithErr(err)),
		}
	}

	// A literal null decodes into a nil map without error.
	if fields == nil {
		return nil, failure.InvalidField{
			Description: failure.NewDescription("body is null"),
		}
	}

	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
