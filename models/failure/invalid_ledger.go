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

// InvalidLedger is the error for a ledger spec that can not be put on a
// request. A ledger spec is considered invalid when:
//	- the shortcut is not one of the known symbolic ledgers
//	- the hash is not a hex-encoded string of the right length
//	- more than one ledger variant was requested at construction
//	- the request method does not accept a ledger spec
type InvalidLedger struct {
	Description Description
}

// Error implements the error interface.
func (i InvalidLedger) Error() string {
	return fmt.Sprintf("invalid ledger spec: %s", i.Description)
}
