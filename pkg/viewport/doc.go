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

// Package viewport tracks the first visible line of a window and keeps
// the line holding the root selection inside the visible band.
//
// A Viewport never refers to selections. Callers pass the selection line
// in and apply any cursor nudge that a scroll reports.
package viewport
