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

package source

import (
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackingStoreStr(t *testing.T) {
	tcases := []struct {
		str       string
		target    string
		idx       uint
		expectErr bool
	}{
		{str: "vda", target: "vda", idx: 0},
		{str: "vda[1]", target: "vda", idx: 1},
		{str: "vda[597]", target: "vda", idx: 597},
		{str: "sda", target: "sda", idx: 0},
		{str: "vda[x]", expectErr: true},
		{str: "vda[]", expectErr: true},
		{str: "vda[1", expectErr: true},
		{str: "vda[1]x", expectErr: true},
		{str: "vda[-1]", expectErr: true},
		{str: "vda[ 1]", expectErr: true},
	}

	for _, tc := range tcases {
		t.Run(tc.str, func(t *testing.T) {
			target, idx, err := ParseBackingStoreStr(tc.str)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errdefs.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.target, target)
			assert.Equal(t, tc.idx, idx)
		})
	}
}

func TestParseChainIndex(t *testing.T) {
	tcases := []struct {
		name       string
		diskTarget string
		spec       string
		idx        uint
		expectErr  bool
	}{
		{name: "matching target", diskTarget: "vda", spec: "vda[2]", idx: 2},
		{name: "mismatched target", diskTarget: "vda", spec: "sdb[2]", expectErr: true},
		{name: "zero index is not checked", diskTarget: "vda", spec: "sdb[0]", idx: 0},
		{name: "no index", diskTarget: "vda", spec: "vda", idx: 0},
		{name: "empty spec", diskTarget: "vda", spec: "", idx: 0},
		{name: "empty disk target", diskTarget: "", spec: "vda[2]", idx: 0},
		{name: "unparseable spec", diskTarget: "vda", spec: "vda[x]", idx: 0},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := ParseChainIndex(tc.diskTarget, tc.spec)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errdefs.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.idx, idx)
		})
	}
}

func TestIsFileBacking(t *testing.T) {
	tcases := []struct {
		backing  string
		expected bool
	}{
		{"", false},
		{"path/to/file", true},
		{"/path/to/file", true},
		{"./file:with:colon", true},
		{"nbd:example.org:6000", false},
		{"rbd:pool/image", false},
		{"http://example.com/image", false},
	}

	for _, tc := range tcases {
		assert.Equal(t, tc.expected, IsFileBacking(tc.backing), "IsFileBacking(%q)", tc.backing)
	}
}

func TestIsRelativeBacking(t *testing.T) {
	tcases := []struct {
		backing  string
		expected bool
	}{
		{"path/to/file", true},
		{"./file", true},
		{"/path/to/file", false},
		{"nbd:example.org:6000", false},
	}

	for _, tc := range tcases {
		assert.Equal(t, tc.expected, IsRelativeBacking(tc.backing), "IsRelativeBacking(%q)", tc.backing)
	}
}
