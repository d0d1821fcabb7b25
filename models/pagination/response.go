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
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/optakt/xrpl-query/models/wire"
)

// Response holds the pagination echo of a response. It can only be obtained
// by decoding a response body.
type Response struct {
	marker   Marker
	limit    uint32
	hasLimit bool
}

// DecodeResponse reads the pagination fields from a response body. Both are
// optional: a missing marker means the result set is exhausted.
func DecodeResponse(fields wire.Fields) (Response, error) {

	var r Response
	var errs *multierror.Error

	_, err := wire.Optional(fields, FieldMarker, &r.marker)
	errs = multierror.Append(errs, err)

	ok, err := wire.Optional(fields, FieldLimit, &r.limit)
	errs = multierror.Append(errs, err)
	r.hasLimit = ok

	err = errs.ErrorOrNil()
	if err != nil {
		return Response{}, err
	}

	return r, nil
}

// Marker returns the continuation marker for the next page, if any.
func (r Response) Marker() (Marker, bool) {
	return r.marker, !r.marker.IsZero()
}

// Limit returns the limit the node applied, if it echoed it.
func (r Response) Limit() (uint32, bool) {
	return r.limit, r.hasLimit
}

// Exhausted returns whether this was the last page.
func (r Response) Exhausted() bool {
	return r.marker.IsZero()
}

// MarshalZerologObject implements `zerolog.LogObjectMarshaler`.
func (r Response) MarshalZerologObject(e *zerolog.Event) {
	if !r.marker.IsZero() {
		e.RawJSON(FieldMarker, r.marker.raw)
	}
	if r.hasLimit {
		e.Uint32(FieldLimit, r.limit)
	}
	e.Bool("exhausted", r.Exhausted())
}

// Paged is implemented by responses that carry a pagination echo.
type Paged interface {
	Pagination() Response
}

// Next prepares the request for the page that follows the given response, by
// copying the response's marker verbatim. It returns false, leaving the
// request untouched, when the response was the last page.
func Next(request Paginated, response Paged) bool {
	marker, ok := response.Pagination().Marker()
	if !ok {
		return false
	}
	request.PaginationMut().SetMarker(marker)
	return true
}
