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
	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/wire"
)

// Wire names of the pagination fields, both on requests and on responses.
const (
	FieldMarker = "marker"
	FieldLimit  = "limit"
)

// Request holds the pagination settings of a request. The zero value asks for
// the first page with the node's default limit.
//
// The marker must be the unmodified value returned by the node for the
// previous page; this can not be checked locally.
type Request struct {
	marker   Marker
	limit    uint32
	hasLimit bool
}

func (r Request) Marker() (Marker, bool) {
	return r.marker, !r.marker.IsZero()
}

func (r Request) Limit() (uint32, bool) {
	return r.limit, r.hasLimit
}

func (r *Request) SetMarker(marker Marker) {
	r.marker = marker
}

func (r *Request) ClearMarker() {
	r.marker = Marker{}
}

func (r *Request) SetLimit(limit uint32) {
	r.limit = limit
	r.hasLimit = true
}

func (r *Request) ClearLimit() {
	r.limit = 0
	r.hasLimit = false
}

// Fields returns the top-level body fields for the pagination settings.
func (r Request) Fields() (wire.Fields, error) {

	fields := make(wire.Fields)

	if !r.marker.IsZero() {
		fields[FieldMarker] = r.marker.Raw()
	}
	if r.hasLimit {
		err := fields.Set(FieldLimit, r.limit)
		if err != nil {
			return nil, err
		}
	}

	return fields, nil
}

// MarshalZerologObject implements `zerolog.LogObjectMarshaler`.
func (r Request) MarshalZerologObject(e *zerolog.Event) {
	if !r.marker.IsZero() {
		e.RawJSON(FieldMarker, r.marker.raw)
	}
	if r.hasLimit {
		e.Uint32(FieldLimit, r.limit)
	}
}

// Paginated is implemented by requests whose results may span several pages.
type Paginated interface {
	Pagination() Request
	PaginationMut() *Request
}
