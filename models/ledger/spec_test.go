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

package ledger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/xrpl-query/models/failure"
	"github.com/optakt/xrpl-query/models/ledger"
	"github.com/optakt/xrpl-query/testing/mocks"
)

func TestSpec_Fields(t *testing.T) {
	validated, err := ledger.ByShortcut(ledger.Validated)
	require.NoError(t, err)
	closed, err := ledger.ByShortcut(ledger.Closed)
	require.NoError(t, err)
	current, err := ledger.ByShortcut(ledger.Current)
	require.NoError(t, err)
	hash, err := ledger.ByHash(mocks.GenericHash)
	require.NoError(t, err)

	tests := []struct {
		name string
		spec ledger.Spec
		want map[string]json.RawMessage
	}{
		{
			name: "none",
			spec: ledger.Spec{},
			want: map[string]json.RawMessage{},
		},
		{
			name: "validated shortcut",
			spec: validated,
			want: map[string]json.RawMessage{ledger.FieldIndex: json.RawMessage(`"validated"`)},
		},
		{
			name: "closed shortcut",
			spec: closed,
			want: map[string]json.RawMessage{ledger.FieldIndex: json.RawMessage(`"closed"`)},
		},
		{
			name: "current shortcut",
			spec: current,
			want: map[string]json.RawMessage{ledger.FieldIndex: json.RawMessage(`"current"`)},
		},
		{
			name: "index",
			spec: ledger.ByIndex(mocks.GenericIndex),
			want: map[string]json.RawMessage{ledger.FieldIndex: json.RawMessage(`75443457`)},
		},
		{
			name: "index zero",
			spec: ledger.ByIndex(0),
			want: map[string]json.RawMessage{ledger.FieldIndex: json.RawMessage(`0`)},
		},
		{
			name: "hash",
			spec: hash,
			want: map[string]json.RawMessage{ledger.FieldHash: json.RawMessage(`"` + mocks.GenericHash + `"`)},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			fields, err := test.spec.Fields()

			require.NoError(t, err)
			assert.Equal(t, test.want, map[string]json.RawMessage(fields))
		})
	}
}

func TestSpec_Setters(t *testing.T) {
	t.Run("every setter replaces the previous variant", func(t *testing.T) {
		t.Parallel()

		var spec ledger.Spec
		assert.Equal(t, ledger.KindNone, spec.Kind())

		spec.SetIndex(mocks.GenericIndex)
		index, ok := spec.Index()
		assert.True(t, ok)
		assert.Equal(t, mocks.GenericIndex, index)

		require.NoError(t, spec.SetHash(mocks.GenericHash))
		_, ok = spec.Index()
		assert.False(t, ok)
		hash, ok := spec.Hash()
		assert.True(t, ok)
		assert.Equal(t, mocks.GenericHash, hash)

		require.NoError(t, spec.SetShortcut(ledger.Closed))
		_, ok = spec.Hash()
		assert.False(t, ok)
		shortcut, ok := spec.Shortcut()
		assert.True(t, ok)
		assert.Equal(t, ledger.Closed, shortcut)

		fields, err := spec.Fields()
		require.NoError(t, err)
		assert.Equal(t, []string{ledger.FieldIndex}, fields.Keys())

		spec.Reset()
		assert.Equal(t, ledger.KindNone, spec.Kind())
	})

	t.Run("mutable accessor changes the spec in place", func(t *testing.T) {
		t.Parallel()

		holder := struct{ spec ledger.Spec }{}
		mut := &holder.spec
		mut.SetIndex(7)

		index, ok := holder.spec.Index()
		assert.True(t, ok)
		assert.Equal(t, uint32(7), index)
	})

	t.Run("handles unknown shortcut", func(t *testing.T) {
		t.Parallel()

		spec := ledger.ByIndex(3)
		err := spec.SetShortcut("latest")

		var invalid failure.InvalidLedger
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, ledger.KindIndex, spec.Kind())

		_, err = ledger.ByShortcut("Validated")
		assert.Error(t, err)
	})

	t.Run("handles malformed hash", func(t *testing.T) {
		t.Parallel()

		_, err := ledger.ByHash(mocks.GenericHash[:10])

		var invalid failure.InvalidLedger
		require.True(t, errors.As(err, &invalid))
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "none", ledger.KindNone.String())
	assert.Equal(t, "shortcut", ledger.KindShortcut.String())
	assert.Equal(t, "index", ledger.KindIndex.String())
	assert.Equal(t, "hash", ledger.KindHash.String())
	assert.Equal(t, "unknown", ledger.Kind(42).String())
}

func TestSpec_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	log.Info().Object("ledger", ledger.ByIndex(mocks.GenericIndex)).Msg("")

	assert.JSONEq(t, `{"level":"info","ledger":{"kind":"index","ledger_index":75443457}}`, buf.String())
}
