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

// Package editor implements the core of ted: a document, its selections,
// the viewport onto it and the rendering of one frame per input event.
//
// The commander drives an Editor through its operations. After every
// operation, whether or not it changed anything, the caller asks for a
// Render, which reconciles the viewport with the root selection, asks the
// highlight provider for spans over the visible text, composes a grid and
// writes it to the display.
package editor
