//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package selection implements the cursors of ted.
// A selection is a half-open range of character offsets. A Set holds any
// number of selections under uuid identifiers; one of them, the root, is
// the selection that movement commands act on.
// Vertical movement remembers the column it started from so that moving
// through a short line and back returns to the same column.
package selection
