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

package mocks

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/object"
)

// Global variables that can be used for testing. They are non-nil valid values
// for the types commonly needed to test the query layer.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericAccount = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"

	GenericIssuer = "rpDMez6pm6dBve2TJsmDpv7Yae6V5Pyvy2"

	GenericIndex = uint32(75443457)

	// Hex fields are in mixed case on purpose, so that tests catch any
	// normalization of their case.
	GenericHash = "4bc50c9b0d8515d3EAAE1E74B29A95804346C491EE1A95BF25E4AAB854A6A652"

	GenericTokenID = "000b013a95f14b0044F78A264E41713C64B5F89242540EE208C3098E00000D65"

	GenericURI = "697066733A2F2F62616679626569676479727A74357366703775646D37687537367568377932366E6634646675796C71616266336F636C67747179353566627A6469"
)

// GenericTokenIDs returns a slice of distinct token IDs.
func GenericTokenIDs(number int) []string {
	ids := make([]string, 0, number)
	for i := 0; i < number; i++ {
		ids = append(ids, tokenID(i))
	}
	return ids
}

// GenericNFToken returns a token that is distinct for every index. Even
// indices carry the generic URI, odd ones have no URI.
func GenericNFToken(index int) object.NFToken {
	token := object.NFToken{
		Flags:  uint32(index%16) | 0x8,
		Issuer: GenericIssuer,
		ID:     tokenID(index),
		Taxon:  uint32(146999694 + index),
		Serial: uint32(3429 + index),
	}
	if index%2 == 0 {
		uri := GenericURI
		token.URI = &uri
	}
	return token
}

// GenericNFTokens returns a page of distinct tokens.
func GenericNFTokens(number int) object.NFTokens {
	tokens := make(object.NFTokens, 0, number)
	for i := 0; i < number; i++ {
		tokens = append(tokens, GenericNFToken(i))
	}
	return tokens
}

func tokenID(index int) string {
	return fmt.Sprintf("000b013a95f14b0044F78A264E41713C64B5F89242540EE2%016X", index)
}
