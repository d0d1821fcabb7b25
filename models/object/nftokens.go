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
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/failure"
)

// NFTokens is a sequence of tokens in the order the node returned them.
type NFTokens []NFToken

// DecodeNFTokens decodes an array of tokens. Errors are reported with the
// position of the failing element as path prefix.
func DecodeNFTokens(raws []json.RawMessage) (NFTokens, error) {

	tokens := make(NFTokens, 0, len(raws))
	var errs *multierror.Error
	for index, raw := range raws {
		token, err := DecodeNFToken(raw)
		if err != nil {
			errs = multierror.Append(errs, failure.Within(failure.Index("", index), err))
			continue
		}
		tokens = append(tokens, token)
	}

	err := errs.ErrorOrNil()
	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// Lookup returns the token with the given ID. Token IDs are hexadecimal, so
// they are compared without regard to case.
func (n NFTokens) Lookup(id string) (NFToken, bool) {
	for _, token := range n {
		if strings.EqualFold(token.ID, id) {
			return token, true
		}
	}
	return NFToken{}, false
}

// IDs returns the token IDs in order.
func (n NFTokens) IDs() []string {
	ids := make([]string, 0, len(n))
	for _, token := range n {
		ids = append(ids, token.ID)
	}
	return ids
}

// MarshalZerologArray implements `zerolog.LogArrayMarshaler`.
func (n NFTokens) MarshalZerologArray(a *zerolog.Array) {
	for _, token := range n {
		a.Object(token)
	}
}
