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

package xrpl

import (
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/ledger"
	"github.com/optakt/xrpl-query/models/validate"
	"github.com/optakt/xrpl-query/models/wire"
)

// MethodLedgerClosed returns the unique identifiers of the most recently
// closed ledger.
// See https://xrpl.org/ledger_closed.html
const MethodLedgerClosed = "ledger_closed"

// LedgerClosedRequest is the request for `ledger_closed`; its response is a
// LedgerClosedResponse. It takes no parameters, can not be pinned and is not
// paginated.
type LedgerClosedRequest struct{}

func LedgerClosed(opts ...Option) (*LedgerClosedRequest, error) {
	var l LedgerClosedRequest
	err := apply(&l, opts)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *LedgerClosedRequest) Method() string {
	return MethodLedgerClosed
}

func (l *LedgerClosedRequest) Fields() (wire.Fields, error) {
	return body(l, wire.Fields{})
}

// MarshalJSON implements `json.Marshaler`.
func (l *LedgerClosedRequest) MarshalJSON() ([]byte, error) {
	return Encode(l)
}

// LedgerClosedResponse is the result of `ledger_closed`. Unlike the echo on
// other responses, both ledger fields are required here.
type LedgerClosedResponse struct {
	hash  string
	index uint32
}

func (l *LedgerClosedResponse) DecodeFields(fields wire.Fields) error {

	var hash string
	var index uint32
	var errs *multierror.Error

	err := wire.Required(fields, ledger.FieldHash, &hash)
	if err == nil {
		err = validate.Hash(ledger.FieldHash, hash)
	}
	errs = multierror.Append(errs, err)

	err = wire.Required(fields, ledger.FieldIndex, &index)
	errs = multierror.Append(errs, err)

	err = errs.ErrorOrNil()
	if err != nil {
		return err
	}

	l.hash = hash
	l.index = index

	return nil
}

func (l *LedgerClosedResponse) Hash() string {
	return l.hash
}

func (l *LedgerClosedResponse) Index() uint32 {
	return l.index
}

// Spec returns a spec that pins follow-up requests to this ledger by hash.
func (l *LedgerClosedResponse) Spec() ledger.Spec {
	spec, err := ledger.ByHash(l.hash)
	if err != nil {
		return ledger.ByIndex(l.index)
	}
	return spec
}

// UnmarshalJSON implements `json.Unmarshaler`.
func (l *LedgerClosedResponse) UnmarshalJSON(data []byte) error {
	return Decode(data, l)
}

// MarshalZerologObject implements `zerolog.LogObjectMarshaler`.
func (l *LedgerClosedResponse) MarshalZerologObject(e *zerolog.Event) {
	e.Str(ledger.FieldHash, l.hash).
		Uint32(ledger.FieldIndex, l.index)
}
