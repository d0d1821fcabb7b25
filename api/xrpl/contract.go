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
	"fmt"

	"github.com/optakt/xrpl-query/models/ledger"
	"github.com/optakt/xrpl-query/models/pagination"
	"github.com/optakt/xrpl-query/models/wire"
)

// Request is implemented by every query that can be sent to a node. The method
// routes the call in the RPC envelope, while the fields make up its flat
// parameter object.
type Request interface {
	Method() string
	Fields() (wire.Fields, error)
}

// Response is implemented by the decoded result of every query. Each request
// type documents the response type it is paired with.
type Response interface {
	DecodeFields(fields wire.Fields) error
}

// Encode returns the JSON body of the request.
func Encode(req Request) ([]byte, error) {
	fields, err := req.Fields()
	if err != nil {
		return nil, fmt.Errorf("could not build %s body: %w", req.Method(), err)
	}
	data, err := wire.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("could not encode %s body: %w", req.Method(), err)
	}
	return data, nil
}

// Decode decodes a JSON result body into the response. The response is only
// populated if decoding succeeds as a whole.
func Decode(data []byte, res Response) error {
	fields, err := wire.Parse(data)
	if err != nil {
		return fmt.Errorf("could not parse body: %w", err)
	}
	err = res.DecodeFields(fields)
	if err != nil {
		return fmt.Errorf("could not decode body: %w", err)
	}
	return nil
}

// body flattens the method's own fields with the fields of the ledger spec and
// pagination capabilities that the request implements.
func body(req Request, own wire.Fields) (wire.Fields, error) {

	parts := []wire.Fields{own}

	pinned, ok := req.(ledger.Pinned)
	if ok {
		fields, err := pinned.LedgerSpec().Fields()
		if err != nil {
			return nil, fmt.Errorf("could not get ledger fields: %w", err)
		}
		parts = append(parts, fields)
	}

	paginated, ok := req.(pagination.Paginated)
	if ok {
		fields, err := paginated.Pagination().Fields()
		if err != nil {
			return nil, fmt.Errorf("could not get pagination fields: %w", err)
		}
		parts = append(parts, fields)
	}

	return wire.Merge(parts...)
}
