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

package canonpath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapResolver treats every key of links as a symlink to its value and
// everything else as a plain path component.
func mapResolver(links map[string]string) Resolver {
	return func(path string) (string, bool, error) {
		if target, ok := links[path]; ok {
			return target, true, nil
		}
		return "", false, nil
	}
}

func TestCanonicalize(t *testing.T) {
	tcases := []struct {
		name     string
		path     string
		links    map[string]string
		expected string
	}{
		{
			name:     "canonical path is untouched",
			path:     "/path/to/file",
			expected: "/path/to/file",
		},
		{
			name:     "redundant separators",
			path:     "///path//to////file",
			expected: "/path/to/file",
		},
		{
			name:     "double slash prefix is preserved",
			path:     "//path/to/file",
			expected: "//path/to/file",
		},
		{
			name:     "triple slash collapses to one",
			path:     "///path",
			expected: "/path",
		},
		{
			name:     "trailing slash",
			path:     "/path/",
			expected: "/path",
		},
		{
			name:     "dot components",
			path:     "/path/./to/./file",
			expected: "/path/to/file",
		},
		{
			name:     "dotdot folds previous component",
			path:     "/path/to/../file",
			expected: "/path/file",
		},
		{
			name:     "dotdot at root",
			path:     "/path/..",
			expected: "/",
		},
		{
			name:     "relative keeps leading dotdot run",
			path:     "../../path/./to//file",
			expected: "../../path/to/file",
		},
		{
			name:     "lone dot survives on relative path",
			path:     ".",
			expected: ".",
		},
		{
			name:     "relative collapses to empty string",
			path:     "path/..",
			expected: "",
		},
		{
			name:     "deep relative collapse",
			path:     "a/b/../..",
			expected: "",
		},
		{
			name:     "absolute symlink target",
			path:     "/a/b/c",
			links:    map[string]string{"/a/b": "/x/y"},
			expected: "/x/y/c",
		},
		{
			name:     "relative symlink target",
			path:     "/a/b/c",
			links:    map[string]string{"/a/b": "../d"},
			expected: "/d/c",
		},
		{
			name:     "symlink to double slash",
			path:     "/a",
			links:    map[string]string{"/a": "//x"},
			expected: "//x",
		},
		{
			name:     "symlink chain",
			path:     "/a",
			links:    map[string]string{"/a": "/b", "/b": "/c"},
			expected: "/c",
		},
		{
			name:     "symlink target needs cleanup",
			path:     "/a/c",
			links:    map[string]string{"/a": "b//./d"},
			expected: "/b/d/c",
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Canonicalize(tc.path, mapResolver(tc.links))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	resolve := mapResolver(nil)
	for _, path := range []string{"/path/to/file", "../../rel/file", "//net/share", ""} {
		once, err := Canonicalize(path, resolve)
		require.NoError(t, err)
		twice, err := Canonicalize(once, resolve)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "canonicalizing %q twice", path)
	}
}

func TestCanonicalizeLoop(t *testing.T) {
	links := map[string]string{
		"/a": "b",
		"/b": "a",
	}

	_, err := Canonicalize("/a", mapResolver(links))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSymlinkLoop), "expected symlink loop error, got %v", err)

	// self-referencing link
	_, err = Canonicalize("/self/x", mapResolver(map[string]string{"/self": "self"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSymlinkLoop))
}

func TestCanonicalizeSamePrefixTwiceAcrossCalls(t *testing.T) {
	// the cycle set is scoped to a single call, so a second call
	// traversing the same prefix must succeed
	links := map[string]string{"/a/b": "/x"}
	for i := 0; i < 2; i++ {
		got, err := Canonicalize("/a/b", mapResolver(links))
		require.NoError(t, err)
		assert.Equal(t, "/x", got)
	}
}

func TestCanonicalizeResolverError(t *testing.T) {
	resolverErr := errors.New("resolver broke")
	resolve := func(path string) (string, bool, error) {
		if path == "/a/b" {
			return "", false, resolverErr
		}
		return "", false, nil
	}

	_, err := Canonicalize("/a/b/c", resolve)
	require.Error(t, err)
	assert.True(t, errors.Is(err, resolverErr))
}

func TestOSResolver(t *testing.T) {
	dir := t.TempDir()

	// the temp dir itself may contain symlinked components
	base, err := Canonicalize(dir, OSResolver)
	require.NoError(t, err)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "real"), 0755))
	require.NoError(t, os.Symlink("real", filepath.Join(dir, "link")))

	got, err := Canonicalize(filepath.Join(dir, "link", "file"), OSResolver)
	require.NoError(t, err)
	assert.Equal(t, base+"/real/file", got)

	// nonexistent paths are normalized, not rejected
	got, err = Canonicalize(filepath.Join(dir, "missing", "..", "real"), OSResolver)
	require.NoError(t, err)
	assert.Equal(t, base+"/real", got)
}
