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
	"encoding/json"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/failure"
	"github.com/optakt/xrpl-query/models/ledger"
	"github.com/optakt/xrpl-query/models/object"
	"github.com/optakt/xrpl-query/models/pagination"
	"github.com/optakt/xrpl-query/models/validate"
	"github.com/optakt/xrpl-query/models/wire"
)

// MethodAccountNFTs lists the non-fungible tokens held by an account.
// See https://xrpl.org/account_nfts.html
const MethodAccountNFTs = "account_nfts"

const (
	FieldAccount     = "account"
	FieldAccountNFTs = "account_nfts"
)

// AccountNFTsRequest is the request for `account_nfts`; its response is an
// AccountNFTsResponse. It can be pinned to a ledger and is paginated.
type AccountNFTsRequest struct {
	account    string
	ledger     ledger.Spec
	pagination pagination.Request
}

// AccountNFTs creates a request for the tokens held by the given account.
func AccountNFTs(account string, opts ...Option) (*AccountNFTsRequest, error) {

	err := validate.Account(FieldAccount, account)
	if err != nil {
		return nil, err
	}

	a := AccountNFTsRequest{
		account: account,
	}
	err = apply(&a, opts)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (a *AccountNFTsRequest) Method() string {
	return MethodAccountNFTs
}

func (a *AccountNFTsRequest) Account() string {
	return a.account
}

func (a *AccountNFTsRequest) LedgerSpec() ledger.Spec {
	return a.ledger
}

func (a *AccountNFTsRequest) LedgerSpecMut() *ledger.Spec {
	return &a.ledger
}

func (a *AccountNFTsRequest) Pagination() pagination.Request {
	return a.pagination
}

func (a *AccountNFTsRequest) PaginationMut() *pagination.Request {
	return &a.pagination
}

// Fields returns the flat parameter object of the request.
func (a *AccountNFTsRequest) Fields() (wire.Fields, error) {
	own := make(wire.Fields)
	err := own.Set(FieldAccount, a.account)
	if err != nil {
		return nil, err
	}
	return body(a, own)
}

// MarshalJSON implements `json.Marshaler`.
func (a *AccountNFTsRequest) MarshalJSON() ([]byte, error) {
	return Encode(a)
}

// MarshalZerologObject implements `zerolog.LogObjectMarshaler`.
func (a *AccountNFTsRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("method", MethodAccountNFTs).
		Str(FieldAccount, a.account).
		Object("ledger", a.ledger).
		Object("pagination", a.pagination)
}

// AccountNFTsResponse is the result of `account_nfts`.
type AccountNFTsResponse struct {
	account    string
	nfts       object.NFTokens
	ledger     ledger.Reference
	pagination pagination.Response
}

// DecodeFields implements Response. The token list is required; the account,
// ledger and pagination echoes are optional.
func (a *AccountNFTsResponse) DecodeFields(fields wire.Fields) error {

	var account string
	var raws []json.RawMessage
	var errs *multierror.Error

	_, err := wire.Optional(fields, FieldAccount, &account)
	errs = multierror.Append(errs, err)

	err = wire.Required(fields, FieldAccountNFTs, &raws)
	errs = multierror.Append(errs, err)
	var nfts object.NFTokens
	if err == nil {
		nfts, err = object.DecodeNFTokens(raws)
		errs = multierror.Append(errs, failure.Within(FieldAccountNFTs, err))
	}

	ref, err := ledger.DecodeReference(fields)
	errs = multierror.Append(errs, err)

	page, err := pagination.DecodeResponse(fields)
	errs = multierror.Append(errs, err)

	err = errs.ErrorOrNil()
	if err != nil {
		return err
	}

	a.account = account
	a.nfts = nfts
	a.ledger = ref
	a.pagination = page

	return nil
}

// Account returns the echoed account, which is empty if the node omitted it.
func (a *AccountNFTsResponse) Account() string {
	return a.account
}

// NFTs returns the tokens of this page, in the order the node returned them.
func (a *AccountNFTsResponse) NFTs() object.NFTokens {
	return a.nfts
}

func (a *AccountNFTsResponse) LedgerReference() ledger.Reference {
	return a.ledger
}

func (a *AccountNFTsResponse) Pagination() pagination.Response {
	return a.pagination
}

// UnmarshalJSON implements `json.Unmarshaler`.
func (a *AccountNFTsResponse) UnmarshalJSON(data []byte) error {
	return Decode(data, a)
}

// MarshalZerologObject implements `zerolog.LogObjectMarshaler`.
func (a *AccountNFTsResponse) MarshalZerologObject(e *zerolog.Event) {
	e.Str(FieldAccount, a.account).
		Int("count", len(a.nfts)).
		Array(FieldAccountNFTs, a.nfts).
		Object("ledger", a.ledger).
		Object("pagination", a.pagination)
}
