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
	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/failure"
	"github.com/optakt/xrpl-query/models/validate"
	"github.com/optakt/xrpl-query/models/wire"
)

// Wire names of the ledger fields, both on requests and on responses.
const (
	FieldIndex        = "ledger_index"
	FieldHash         = "ledger_hash"
	FieldCurrentIndex = "ledger_current_index"
	FieldValidated    = "validated"
)

// Spec pins a request to a ledger version. It holds at most one variant: every
// setter replaces whatever variant was set before. The zero value leaves the
// choice of ledger to the node.
type Spec struct {
	kind     Kind
	shortcut Shortcut
	index    uint32
	hash     string
}

// ByShortcut returns a spec for one of the symbolic ledgers.
func ByShortcut(shortcut Shortcut) (Spec, error) {
	var s Spec
	err := s.SetShortcut(shortcut)
	if err != nil {
		return Spec{}, err
	}
	return s, nil
}

// ByIndex returns a spec for the ledger with the given sequence number.
func ByIndex(index uint32) Spec {
	var s Spec
	s.SetIndex(index)
	return s
}

// ByHash returns a spec for the ledger with the given hash. The hash is kept
// exactly as given, including its case.
func ByHash(hash string) (Spec, error) {
	var s Spec
	err := s.SetHash(hash)
	if err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Kind returns which variant is set.
func (s Spec) Kind() Kind {
	return s.kind
}

// Shortcut returns the symbolic ledger, if that is the variant set.
func (s Spec) Shortcut() (Shortcut, bool) {
	return s.shortcut, s.kind == KindShortcut
}

// Index returns the ledger sequence number, if that is the variant set.
func (s Spec) Index() (uint32, bool) {
	return s.index, s.kind == KindIndex
}

// Hash returns the ledger hash, if that is the variant set.
func (s Spec) Hash() (string, bool) {
	return s.hash, s.kind == KindHash
}

// SetShortcut replaces the spec with the given symbolic ledger.
func (s *Spec) SetShortcut(shortcut Shortcut) error {
	err := validate.Var(FieldIndex, string(shortcut), validate.TagShortcut)
	if err != nil {
		return failure.InvalidLedger{
			Description: failure.NewDescription("shortcut is not a known symbolic ledger",
				failure.WithString("shortcut", string(shortcut)),
			),
		}
	}
	*s = Spec{kind: KindShortcut, shortcut: shortcut}
	return nil
}

// SetIndex replaces the spec with the given ledger sequence number.
func (s *Spec) SetIndex(index uint32) {
	*s = Spec{kind: KindIndex, index: index}
}

// SetHash replaces the spec with the given ledger hash.
func (s *Spec) SetHash(hash string) error {
	err := validate.Hash(FieldHash, hash)
	if err != nil {
		return failure.InvalidLedger{
			Description: failure.NewDescription("hash is not a hex-encoded ledger hash",
				failure.WithString("hash", hash),
				failure.WithErr(err),
			),
		}
	}
	*s = Spec{kind: KindHash, hash: hash}
	return nil
}

// Reset clears the spec, leaving the choice of ledger to the node.
func (s *Spec) Reset() {
	*s = Spec{}
}

// Fields returns the top-level body fields for the spec. Shortcuts and
// sequence numbers share the `ledger_index` key; hashes use `ledger_hash`.
func (s Spec) Fields() (wire.Fields, error) {

	fields := make(wire.Fields)

	var err error
	switch s.kind {
	case KindShortcut:
		err = fields.Set(FieldIndex, string(s.shortcut))
	case KindIndex:
		err = fields.Set(FieldIndex, s.index)
	case KindHash:
		err = fields.Set(FieldHash, s.hash)
	}
	if err != nil {
		return nil, err
	}

	return fields, nil
}

// MarshalZerologObject implements `zerolog.LogObjectMarshaler`.
func (s Spec) MarshalZerologObject(e *zerolog.Event) {
	e.Str("kind", s.kind.String())
	switch s.kind {
	case KindShortcut:
		e.Str(FieldIndex, string(s.shortcut))
	case KindIndex:
		e.Uint32(FieldIndex, s.index)
	case KindHash:
		e.Str(FieldHash, s.hash)
	}
}

// Pinned is implemented by requests that can be pinned to a ledger version.
type Pinned interface {
	LedgerSpec() Spec
	LedgerSpecMut() *Spec
}
