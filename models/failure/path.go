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

package failure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Index returns the path segment for the element at the given position of the
// named array field.
func Index(name string, index int) string {
	return fmt.Sprintf("%s[%d]", name, index)
}

// Within prefixes the path of every field error contained in err with the
// given segment. Errors that carry no path are returned unchanged.
func Within(segment string, err error) error {
	switch e := err.(type) {

	case MissingField:
		e.Path = join(segment, e.Path)
		return e

	case InvalidField:
		e.Path = join(segment, e.Path)
		return e

	case *multierror.Error:
		if e == nil {
			return nil
		}
		prefixed := &multierror.Error{ErrorFormat: e.ErrorFormat}
		for _, inner := range e.Errors {
			prefixed.Errors = append(prefixed.Errors, Within(segment, inner))
		}
		return prefixed

	default:
		return err
	}
}

// Path returns the path of the first field error found in the chain of err.
func Path(err error) (string, bool) {
	var missing MissingField
	var invalid InvalidField
	var first error
	for _, candidate := range flatten(err) {
		if errors.As(candidate, &missing) || errors.As(candidate, &invalid) {
			first = candidate
			break
		}
	}
	switch {
	case first == nil:
		return "", false
	case errors.As(first, &missing):
		return missing.Path, true
	default:
		return invalid.Path, true
	}
}

// Paths returns the paths of all field errors contained in err, in order.
func Paths(err error) []string {
	var paths []string
	for _, candidate := range flatten(err) {
		var missing MissingField
		if errors.As(candidate, &missing) {
			paths = append(paths, missing.Path)
			continue
		}
		var invalid InvalidField
		if errors.As(candidate, &invalid) {
			paths = append(paths, invalid.Path)
		}
	}
	return paths
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return []error{err}
	}
	var all []error
	for _, inner := range merr.Errors {
		all = append(all, flatten(inner)...)
	}
	return all
}

func join(prefix string, path string) string {
	switch {
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}
