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

// Shortcut is a symbolic reference to a well-known ledger state.
type Shortcut string

const (
	Validated Shortcut = "validated"
	Closed    Shortcut = "closed"
	Current   Shortcut = "current"
)

// Kind identifies the variant held by a Spec.
type Kind uint8

const (
	KindNone Kind = iota
	KindShortcut
	KindIndex
	KindHash
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindShortcut:
		return "shortcut"
	case KindIndex:
		return "index"
	case KindHash:
		return "hash"
	default:
		return "unknown"
	}
}
