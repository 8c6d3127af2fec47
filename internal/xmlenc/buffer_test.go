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

package xmlenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferIndent(t *testing.T) {
	var buf Buffer
	buf.Printf("<outer>\n")
	buf.AdjustIndent(2)
	buf.Printf("<inner/>\n")
	buf.AdjustIndent(-2)
	buf.Printf("</outer>\n")

	assert.Equal(t, "<outer>\n  <inner/>\n</outer>\n", buf.String())
}

func TestBufferPartialLine(t *testing.T) {
	var buf Buffer
	buf.AdjustIndent(2)
	buf.Printf("<elem ")
	buf.Printf("a='1'")
	buf.Printf("/>\n")
	buf.Printf("<next/>\n")

	assert.Equal(t, "  <elem a='1'/>\n  <next/>\n", buf.String())
}

func TestBufferEscape(t *testing.T) {
	var buf Buffer
	buf.Escape("<e v='%s'/>\n", `a&b<c>"d'`)
	assert.Equal(t, "<e v='a&amp;b&lt;c&gt;&quot;d&apos;'/>\n", buf.String())

	// empty values emit nothing
	buf.Escape("<e v='%s'/>\n", "")
	assert.Equal(t, "<e v='a&amp;b&lt;c&gt;&quot;d&apos;'/>\n", buf.String())
}

func TestBufferNegativeIndentClamped(t *testing.T) {
	var buf Buffer
	buf.AdjustIndent(-4)
	buf.Printf("x\n")
	assert.Equal(t, "x\n", buf.String())
}
