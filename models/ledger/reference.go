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

package ledger

import (
	"encoding/json"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/failure"
	"github.com/optakt/xrpl-query/models/validate"
	"github.com/optakt/xrpl-query/models/wire"
)

// Reference is the node's echo of the ledger version that served a response.
// It can only be obtained by decoding a response body.
type Reference struct {
	index     uint32
	hasIndex  bool
	current   bool
	hash      string
	hasHash   bool
	validated bool
}

// DecodeReference reads the echoed ledger fields from a response body. All of
// them are optional; the open ledger is echoed as `ledger_current_index`
// instead of `ledger_index`.
func DecodeReference(fields wire.Fields) (Reference, error) {

	var r Reference
	var errs *multierror.Error

	key := FieldIndex
	if !fields.Has(key) && fields.Has(FieldCurrentIndex) {
		key = FieldCurrentIndex
		r.current = true
	}
	if fields.Has(key) {
		index, err := decodeIndex(key, fields[key])
		errs = multierror.Append(errs, err)
		r.index = index
		r.hasIndex = err == nil
	}

	ok, err := wire.Optional(fields, FieldHash, &r.hash)
	if err == nil && ok {
		err = validate.Hash(FieldHash, r.hash)
	}
	errs = multierror.Append(errs, err)
	r.hasHash = ok && err == nil

	_, err = wire.Optional(fields, FieldValidated, &r.validated)
	errs = multierror.Append(errs, err)

	err = errs.ErrorOrNil()
	if err != nil {
		return Reference{}, err
	}

	return r, nil
}

// Index returns the sequence number of the ledger, if the node echoed it.
func (r Reference) Index() (uint32, bool) {
	return r.index, r.hasIndex
}

// Hash returns the hash of the ledger, if the node echoed it.
func (r Reference) Hash() (string, bool) {
	return r.hash, r.hasHash
}

// Validated returns whether the node reported the ledger as validated.
func (r Reference) Validated() bool {
	return r.validated
}

// Current returns whether the response was served from the open ledger.
func (r Reference) Current() bool {
	return r.current
}

// MarshalZerologObject implements `zerolog.LogObjectMarshaler`.
func (r Reference) MarshalZerologObject(e *zerolog.Event) {
	if r.hasIndex {
		e.Uint32(FieldIndex, r.index)
	}
	if r.hasHash {
		e.Str(FieldHash, r.hash)
	}
	e.Bool(FieldValidated, r.validated)
	e.Bool("current", r.current)
}

// Referenced is implemented by responses that echo the ledger they were
// served from.
type Referenced interface {
	LedgerReference() Reference
}

// decodeIndex accepts the sequence number either as a JSON number or as a
// decimal string, as some node methods quote it.
func decodeIndex(path string, raw json.RawMessage) (uint32, error) {

	var index uint32
	numErr := wire.Decode(path, raw, &index)
	if numErr == nil {
		return index, nil
	}

	var text string
	err := json.Unmarshal(raw, &text)
	if err != nil {
		return 0, numErr
	}

	value, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, failure.InvalidField{
			Path: path,
			Description: failure.NewDescription("ledger index is not a decimal sequence number",
				failure.WithString("value", text),
			),
		}
	}

	return uint32(value), nil
}
