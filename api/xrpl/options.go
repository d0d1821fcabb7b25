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

package xrpl

import (
	"github.com/hashicorp/go-multierror"

	"github.com/optakt/xrpl-query/models/failure"
	"github.com/optakt/xrpl-query/models/ledger"
	"github.com/optakt/xrpl-query/models/pagination"
)

// Option configures a request at construction.
type Option func(*options)

type options struct {
	specs   []ledger.Spec
	limit   *uint32
	marker  *pagination.Marker
	invalid *multierror.Error
}

// WithLedger pins the request to the given ledger. Only one ledger option may
// be given per request.
func WithLedger(spec ledger.Spec) Option {
	return func(o *options) {
		o.specs = append(o.specs, spec)
	}
}

// WithShortcut pins the request to a symbolic ledger.
func WithShortcut(shortcut ledger.Shortcut) Option {
	return func(o *options) {
		spec, err := ledger.ByShortcut(shortcut)
		if err != nil {
			o.invalid = multierror.Append(o.invalid, err)
			return
		}
		o.specs = append(o.specs, spec)
	}
}

// WithIndex pins the request to the ledger with the given sequence number.
func WithIndex(index uint32) Option {
	return WithLedger(ledger.ByIndex(index))
}

// WithHash pins the request to the ledger with the given hash.
func WithHash(hash string) Option {
	return func(o *options) {
		spec, err := ledger.ByHash(hash)
		if err != nil {
			o.invalid = multierror.Append(o.invalid, err)
			return
		}
		o.specs = append(o.specs, spec)
	}
}

// WithLimit sets the maximum number of records per page.
func WithLimit(limit uint32) Option {
	return func(o *options) {
		o.limit = &limit
	}
}

// WithMarker resumes the query from a marker previously returned by the node.
func WithMarker(marker pagination.Marker) Option {
	return func(o *options) {
		o.marker = &marker
	}
}

// apply sets the options on the request through its capabilities. Conflicting
// ledger specs and options for capabilities the request lacks fail here, at
// construction, rather than when the body is built.
func apply(req Request, opts []Option) error {

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	errs := o.invalid
	if len(o.specs) > 0 {
		errs = multierror.Append(errs, applyLedger(req, o.specs))
	}

	if o.limit != nil || o.marker != nil {
		errs = multierror.Append(errs, applyPagination(req, o.limit, o.marker))
	}

	return errs.ErrorOrNil()
}

func applyLedger(req Request, specs []ledger.Spec) error {

	pinned, ok := req.(ledger.Pinned)
	if !ok {
		return failure.InvalidLedger{
			Description: failure.NewDescription("method does not accept a ledger spec",
				failure.WithString("method", req.Method()),
			),
		}
	}

	if len(specs) > 1 {
		kinds := make([]string, 0, len(specs))
		for _, spec := range specs {
			kinds = append(kinds, spec.Kind().String())
		}
		return failure.InvalidLedger{
			Description: failure.NewDescription("more than one ledger spec given",
				failure.WithString("method", req.Method()),
				failure.WithStrings("kinds", kinds...),
			),
		}
	}

	*pinned.LedgerSpecMut() = specs[0]

	return nil
}

func applyPagination(req Request, limit *uint32, marker *pagination.Marker) error {

	paginated, ok := req.(pagination.Paginated)
	if !ok {
		return failure.InvalidPagination{
			Description: failure.NewDescription("method is not paginated",
				failure.WithString("method", req.Method()),
			),
		}
	}

	if limit != nil {
		paginated.PaginationMut().SetLimit(*limit)
	}
	if marker != nil {
		paginated.PaginationMut().SetMarker(*marker)
	}

	return nil
}
