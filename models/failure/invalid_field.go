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

// InvalidField is the error for a field whose value does not match the
// expected wire shape, such as a wrong primitive type or malformed hex. An
// empty path designates the body itself.
type InvalidField struct {
	Path        string
	Description Description
}

// Error implements the error interface.
func (i InvalidField) Error() string {
	if i.Path == "" {
		return fmt.Sprintf("invalid body: %s", i.Description)
	}
	return fmt.Sprintf("invalid field (path: %s): %s", i.Path, i.Description)
}
