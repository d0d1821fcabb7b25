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

package wire_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/xrpl-query/models/failure"
	"github.com/optakt/xrpl-query/models/wire"
)

func TestRequired(t *testing.T) {
	fields := wire.Fields{
		"Flags":      json.RawMessage(`8`),
		"Issuer":     json.RawMessage(`null`),
		"NFTokenID":  json.RawMessage(`42`),
		"nft_serial": json.RawMessage(`-1`),
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		var flags uint32
		err := wire.Required(fields, "Flags", &flags)

		require.NoError(t, err)
		assert.Equal(t, uint32(8), flags)
	})

	t.Run("handles absent field", func(t *testing.T) {
		t.Parallel()

		var taxon uint32
		err := wire.Required(fields, "NFTokenTaxon", &taxon)

		var missing failure.MissingField
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "NFTokenTaxon", missing.Path)
	})

	t.Run("handles null field", func(t *testing.T) {
		t.Parallel()

		issuer := "untouched"
		err := wire.Required(fields, "Issuer", &issuer)

		var missing failure.MissingField
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "Issuer", missing.Path)
		assert.Equal(t, "untouched", issuer)
	})

	t.Run("handles wrong type", func(t *testing.T) {
		t.Parallel()

		var id string
		err := wire.Required(fields, "NFTokenID", &id)

		var invalid failure.InvalidField
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "NFTokenID", invalid.Path)
	})

	t.Run("handles out of range number", func(t *testing.T) {
		t.Parallel()

		var serial uint32
		err := wire.Required(fields, "nft_serial", &serial)

		var invalid failure.InvalidField
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "nft_serial", invalid.Path)
	})
}

func TestOptional(t *testing.T) {
	fields := wire.Fields{
		"URI":    json.RawMessage(`""`),
		"marker": json.RawMessage(`null`),
		"limit":  json.RawMessage(`"50"`),
	}

	t.Run("present but empty", func(t *testing.T) {
		t.Parallel()

		var uri string
		ok, err := wire.Optional(fields, "URI", &uri)

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "", uri)
	})

	t.Run("null counts as absent", func(t *testing.T) {
		t.Parallel()

		var marker json.RawMessage
		ok, err := wire.Optional(fields, "marker", &marker)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		var validated bool
		ok, err := wire.Optional(fields, "validated", &validated)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("handles wrong type", func(t *testing.T) {
		t.Parallel()

		var limit uint32
		ok, err := wire.Optional(fields, "limit", &limit)

		assert.False(t, ok)
		var invalid failure.InvalidField
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "limit", invalid.Path)
	})
}

func TestDecode(t *testing.T) {
	t.Run("reports nested field of type error", func(t *testing.T) {
		t.Parallel()

		var value struct {
			Inner struct {
				Count uint32 `json:"count"`
			} `json:"inner"`
		}
		err := wire.Decode("outer", json.RawMessage(`{"inner":{"count":"x"}}`), &value)

		var invalid failure.InvalidField
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "outer.inner.count", invalid.Path)
	})

	t.Run("prefixes field errors of custom decoders", func(t *testing.T) {
		t.Parallel()

		var value custom
		err := wire.Decode("outer", json.RawMessage(`{}`), &value)

		var invalid failure.InvalidField
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, "outer.inner", invalid.Path)
	})
}

type custom struct{}

func (c *custom) UnmarshalJSON([]byte) error {
	return failure.InvalidField{Path: "inner"}
}
