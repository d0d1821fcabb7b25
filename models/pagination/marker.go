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

package pagination

import (
	"bytes"
	"encoding/json"

	"github.com/optakt/xrpl-query/models/failure"
)

// Marker is an opaque continuation token issued by the node. Nodes use either
// strings or objects as markers, so the raw JSON value is kept and re-emitted
// byte for byte; its content is never interpreted.
type Marker struct {
	raw json.RawMessage
}

// ParseMarker wraps a raw JSON value as a marker. It is meant for markers that
// were persisted by the caller after being returned by the node.
func ParseMarker(raw []byte) (Marker, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return Marker{}, failure.InvalidPagination{
			Description: failure.NewDescription("marker is not a JSON value", failure.WithString("marker", string(raw))),
		}
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return Marker{}, nil
	}
	return Marker{raw: clone(trimmed)}, nil
}

// IsZero returns whether the marker is empty.
func (m Marker) IsZero() bool {
	return len(m.raw) == 0
}

// Raw returns a copy of the raw JSON value of the marker.
func (m Marker) Raw() json.RawMessage {
	return clone(m.raw)
}

// String returns the raw JSON value of the marker as text.
func (m Marker) String() string {
	return string(m.raw)
}

// Equal returns whether both markers hold the same raw value.
func (m Marker) Equal(other Marker) bool {
	return bytes.Equal(m.raw, other.raw)
}

// MarshalJSON implements `json.Marshaler`.
func (m Marker) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return clone(m.raw), nil
}

// UnmarshalJSON implements `json.Unmarshaler`.
func (m *Marker) UnmarshalJSON(data []byte) error {
	marker, err := ParseMarker(data)
	if err != nil {
		return err
	}
	*m = marker
	return nil
}

func clone(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	dup := make(json.RawMessage, len(raw))
	copy(dup, raw)
	return dup
}
