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

package validate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/xrpl-query/models/failure"
	"github.com/optakt/xrpl-query/models/validate"
	"github.com/optakt/xrpl-query/testing/mocks"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		hash  string
		valid bool
	}{
		{name: "mixed case", hash: mocks.GenericHash, valid: true},
		{name: "lower case", hash: strings.ToLower(mocks.GenericHash), valid: true},
		{name: "too short", hash: mocks.GenericHash[:62], valid: false},
		{name: "too long", hash: mocks.GenericHash + "00", valid: false},
		{name: "not hex", hash: "Z" + mocks.GenericHash[1:], valid: false},
		{name: "empty", hash: "", valid: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Hash("ledger_hash", test.hash)

			if test.valid {
				assert.NoError(t, err)
				return
			}
			var invalid failure.InvalidField
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "ledger_hash", invalid.Path)
		})
	}
}

func TestTokenID(t *testing.T) {
	assert.NoError(t, validate.TokenID("NFTokenID", mocks.GenericTokenID))
	assert.Error(t, validate.TokenID("NFTokenID", mocks.GenericTokenID[2:]))
}

func TestAccount(t *testing.T) {
	assert.NoError(t, validate.Account("account", mocks.GenericAccount))

	err := validate.Account("account", "")

	var invalid failure.InvalidField
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "account", invalid.Path)
}

func TestStruct(t *testing.T) {
	type record struct {
		ID  string  `json:"NFTokenID" validate:"len=64,hexbytes"`
		URI *string `json:"URI,omitempty" validate:"omitempty,hexbytes"`
	}

	empty := ""
	odd := "ABC"
	uri := mocks.GenericURI

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(record{ID: mocks.GenericTokenID, URI: &uri})

		assert.NoError(t, err)
	})

	t.Run("absent and empty optional hex", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validate.Struct(record{ID: mocks.GenericTokenID}))
		assert.NoError(t, validate.Struct(record{ID: mocks.GenericTokenID, URI: &empty}))
	})

	t.Run("reports every field under its wire name", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(record{ID: "xyz", URI: &odd})

		assert.Equal(t, []string{"NFTokenID", "URI"}, failure.Paths(err))
	})

	t.Run("handles non-struct value", func(t *testing.T) {
		t.Parallel()

		err := validate.Struct(42)

		var invalid failure.InvalidField
		assert.True(t, errors.As(err, &invalid))
	})
}
