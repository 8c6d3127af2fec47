/*
   Copyright The containerd Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package xmlenc provides the indented, attribute-escaping emitter used
// when formatting storage source metadata back into a configuration
// document. It only assembles text; it knows nothing about the model.
package xmlenc

import (
	"fmt"
	"strings"
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// Buffer accumulates document text. Indentation is applied at the
// start of each line; partial-line appends continue the current line.
type Buffer struct {
	sb      strings.Builder
	indent  int
	midLine bool
}

// AdjustIndent changes the indentation applied at the start of
// subsequent lines by delta columns.
func (b *Buffer) AdjustIndent(delta int) {
	b.indent += delta
	if b.indent < 0 {
		b.indent = 0
	}
}

// Printf appends formatted text without escaping.
func (b *Buffer) Printf(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	if s == "" {
		return
	}
	if !b.midLine {
		for i := 0; i < b.indent; i++ {
			b.sb.WriteByte(' ')
		}
	}
	b.sb.WriteString(s)
	b.midLine = !strings.HasSuffix(s, "\n")
}

// Escape appends formatted text substituting the attribute value for
// the single %s verb of format, with XML special characters escaped.
// Nothing is emitted when the value is empty.
func (b *Buffer) Escape(format, value string) {
	if value == "" {
		return
	}
	b.Printf(format, attrEscaper.Replace(value))
}

// String returns the accumulated document text.
func (b *Buffer) String() string {
	return b.sb.String()
}
