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

package object

import (
	"encoding/json"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/validate"
	"github.com/optakt/xrpl-query/models/wire"
)

// Wire names of the NFToken fields. Ledger fields are capitalized while the
// serial is an API field in snake case, so every name is spelled out here
// rather than derived from the Go field name.
const (
	FieldFlags   = "Flags"
	FieldIssuer  = "Issuer"
	FieldTokenID = "NFTokenID"
	FieldTaxon   = "NFTokenTaxon"
	FieldURI     = "URI"
	FieldSerial  = "nft_serial"
)

// NFToken represents a single non-fungible token held by an account.
//
// Hex-encoded fields are kept as the exact strings sent by the node, and the
// taxon is kept in the scrambled form in which it is stored on the ledger.
type NFToken struct {
	// Flags is the bit-map of the token's flags; its semantics are owned by the
	// ledger protocol.
	Flags uint32 `json:"Flags" cbor:"Flags"`
	// Issuer is the account that issued the token.
	Issuer string `json:"Issuer" cbor:"Issuer"`
	// ID uniquely identifies the token, in hexadecimal.
	ID string `json:"NFTokenID" cbor:"NFTokenID" validate:"len=64,hexbytes"`
	// Taxon groups tokens of the same issuer.
	Taxon uint32 `json:"NFTokenTaxon" cbor:"NFTokenTaxon"`
	// URI is the hex-encoded URI of the token, or nil if it has none. A
	// non-nil empty string is a URI that is present but empty.
	URI *string `json:"URI,omitempty" cbor:"URI,omitempty" validate:"omitempty,hexbytes"`
	// Serial is the token's sequence number, unique for its issuer only.
	Serial uint32 `json:"nft_serial" cbor:"nft_serial"`
}

// DecodeNFToken decodes a token from its wire representation. Every missing or
// malformed field is reported, with its wire name as path.
func DecodeNFToken(raw json.RawMessage) (NFToken, error) {

	fields, err := wire.Parse(raw)
	if err != nil {
		return NFToken{}, err
	}

	var token NFToken
	var errs *multierror.Error
	errs = multierror.Append(errs, wire.Required(fields, FieldFlags, &token.Flags))
	errs = multierror.Append(errs, wire.Required(fields, FieldIssuer, &token.Issuer))
	errs = multierror.Append(errs, wire.Required(fields, FieldTokenID, &token.ID))
	errs = multierror.Append(errs, wire.Required(fields, FieldTaxon, &token.Taxon))
	errs = multierror.Append(errs, wire.Required(fields, FieldSerial, &token.Serial))

	var uri string
	ok, err := wire.Optional(fields, FieldURI, &uri)
	errs = multierror.Append(errs, err)
	if ok {
		token.URI = &uri
	}

	// Only check the syntax of the values once their types are known to be
	// right, so a field is never reported twice.
	err = errs.ErrorOrNil()
	if err != nil {
		return NFToken{}, err
	}
	err = validate.Struct(token)
	if err != nil {
		return NFToken{}, err
	}

	return token, nil
}

// Fields returns the wire fields of the token. The URI is omitted when absent
// and emitted as an empty string when present but empty.
func (n NFToken) Fields() (wire.Fields, error) {

	fields := make(wire.Fields)
	var errs *multierror.Error
	errs = multierror.Append(errs, fields.Set(FieldFlags, n.Flags))
	errs = multierror.Append(errs, fields.Set(FieldIssuer, n.Issuer))
	errs = multierror.Append(errs, fields.Set(FieldTokenID, n.ID))
	errs = multierror.Append(errs, fields.Set(FieldTaxon, n.Taxon))
	errs = multierror.Append(errs, fields.Set(FieldSerial, n.Serial))
	if n.URI != nil {
		errs = multierror.Append(errs, fields.Set(FieldURI, *n.URI))
	}

	err := errs.ErrorOrNil()
	if err != nil {
		return nil, err
	}

	return fields, nil
}

// MarshalJSON implements `json.Marshaler`.
func (n NFToken) MarshalJSON() ([]byte, error) {
	fields, err := n.Fields()
	if err != nil {
		return nil, err
	}
	return wire.Marshal(fields)
}

// UnmarshalJSON implements `json.Unmarshaler`.
func (n *NFToken) UnmarshalJSON(data []byte) error {
	token, err := DecodeNFToken(data)
	if err != nil {
		return err
	}
	*n = token
	return nil
}

// HasURI returns whether the token carries a URI field, which may be empty.
func (n NFToken) HasURI() bool {
	return n.URI != nil
}

// MarshalZerologObject implements `zerolog.LogObjectMarshaler`.
func (n NFToken) MarshalZerologObject(e *zerolog.Event) {
	e.Str(FieldTokenID, n.ID).
		Str(FieldIssuer, n.Issuer).
		Uint32(FieldFlags, n.Flags).
		Uint32(FieldTaxon, n.Taxon).
		Uint32(FieldSerial, n.Serial)
	if n.URI != nil {
		e.Str(FieldURI, *n.URI)
	}
}
