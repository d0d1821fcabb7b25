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
	"fmt"
)

// InvalidPagination is the error for pagination settings that can not be put
// on a request, either because the marker is not valid JSON or because the
// request method is not paginated.
//
// Markers that are valid JSON but did not originate from the node can not be
// detected locally; the node is the authority on those.
type InvalidPagination struct {
	Description Description
}

// Error implements the error interface.
func (i InvalidPagination) Error() string {
	return fmt.Sprintf("invalid pagination: %s", i.Description)
}
