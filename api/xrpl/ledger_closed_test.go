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

package xrpl_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/xrpl-query/api/xrpl"
	"github.com/optakt/xrpl-query/models/failure"
	"github.com/optakt/xrpl-query/models/ledger"
	"github.com/optakt/xrpl-query/testing/mocks"
)

func TestLedgerClosed(t *testing.T) {
	req, err := xrpl.LedgerClosed()
	require.NoError(t, err)

	assert.Equal(t, xrpl.MethodLedgerClosed, req.Method())

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestLedgerClosedResponse_DecodeFields(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"ledger_hash": "` + mocks.GenericHash + `", "ledger_index": 75443457}`)

		var res xrpl.LedgerClosedResponse
		err := xrpl.Decode(body, &res)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericHash, res.Hash())
		assert.Equal(t, mocks.GenericIndex, res.Index())
	})

	t.Run("pins follow-up requests by hash", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"ledger_hash": "` + mocks.GenericHash + `", "ledger_index": 75443457}`)
		var res xrpl.LedgerClosedResponse
		require.NoError(t, json.Unmarshal(body, &res))

		req, err := xrpl.AccountNFTs(mocks.GenericAccount, xrpl.WithLedger(res.Spec()))
		require.NoError(t, err)

		hash, ok := req.LedgerSpec().Hash()
		assert.True(t, ok)
		assert.Equal(t, mocks.GenericHash, hash)
	})

	t.Run("zero value pins by index", func(t *testing.T) {
		t.Parallel()

		var res xrpl.LedgerClosedResponse

		assert.Equal(t, ledger.KindIndex, res.Spec().Kind())
	})

	t.Run("handles missing fields", func(t *testing.T) {
		t.Parallel()

		var res xrpl.LedgerClosedResponse
		err := xrpl.Decode([]byte(`{"validated": true}`), &res)

		assert.Equal(t, []string{ledger.FieldHash, ledger.FieldIndex}, failure.Paths(err))
	})

	t.Run("handles malformed hash", func(t *testing.T) {
		t.Parallel()

		var res xrpl.LedgerClosedResponse
		err := xrpl.Decode([]byte(`{"ledger_hash": "ABCD", "ledger_index": 75443457}`), &res)

		var invalid failure.InvalidField
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, ledger.FieldHash, invalid.Path)
		assert.Empty(t, res.Hash())
		assert.Zero(t, res.Index())
	})
}

func TestLedgerClosedResponse_MarshalZerologObject(t *testing.T) {
	body := []byte(`{"ledger_hash": "` + mocks.GenericHash + `", "ledger_index": 75443457}`)
	var res xrpl.LedgerClosedResponse
	require.NoError(t, xrpl.Decode(body, &res))

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	log.Info().Object("ledger", &res).Msg("")

	want := `{"level":"info","ledger":{"ledger_hash":"` + mocks.GenericHash + `","ledger_index":75443457}}`
	assert.JSONEq(t, want, buf.String())
}
