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

// Package canonpath resolves filesystem paths to their canonical,
// symlink-free form.
//
// Unlike filepath.EvalSymlinks the walk never touches the filesystem
// directly: every symlink decision is delegated to a caller-supplied
// Resolver, so chains recorded in image metadata can be canonicalized
// against remote or captured filesystem state. A POSIX-significant
// double-slash prefix is preserved; three or more leading slashes
// collapse to one.
package canonpath

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

// ErrSymlinkLoop is returned when resolving a path revisits a prefix
// that was already resolved once during the same call.
var ErrSymlinkLoop = errors.New("too many levels of symbolic links")

// Resolver reports whether path names a symbolic link. It returns the
// link target and true for a symlink, "" and false otherwise. Any error
// aborts the canonicalization and is propagated to the caller.
type Resolver func(path string) (target string, isLink bool, err error)

// formatPath joins components with the leading slash markers
// re-attached. A fully collapsed path yields the empty string.
func formatPath(components []string, beginSlash, beginDoubleSlash bool) string {
	var sb strings.Builder
	if beginSlash {
		sb.WriteByte('/')
	}
	if beginDoubleSlash {
		sb.WriteByte('/')
	}
	for i, c := range components {
		if i != 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(c)
	}
	return sb.String()
}

// splitNonEmpty splits path on '/' discarding the empty components
// produced by consecutive separators.
func splitNonEmpty(path string) []string {
	var components []string
	for _, c := range strings.Split(path, "/") {
		if c != "" {
			components = append(components, c)
		}
	}
	return components
}

// Canonicalize resolves path to its canonical form: no symlinks, no
// redundant separators and no '.' or resolvable '..' components. A
// leading run of '..' on a relative path is kept, since there is
// nothing to resolve it against.
func Canonicalize(path string, resolve Resolver) (string, error) {
	var (
		beginSlash       bool
		beginDoubleSlash bool
	)

	if strings.HasPrefix(path, "/") {
		beginSlash = true
		if strings.HasPrefix(path[1:], "/") && !strings.HasPrefix(path[2:], "/") {
			beginDoubleSlash = true
		}
	}

	// Keyed by the exact prefix string at the moment a symlink was
	// resolved. Revisiting the identical string within one call is
	// always a loop; the set is discarded on return.
	cycle := make(map[string]struct{})

	components := splitNonEmpty(path)

	i := 0
	for i < len(components) {
		// skip '.'s unless it's the last one remaining
		if components[i] == "." && (beginSlash || len(components) > 1) {
			components = slices.Delete(components, i, i+1)
			continue
		}

		// resolve changes to parent directory
		if components[i] == ".." {
			if !beginSlash && (i == 0 || components[i-1] == "..") {
				i++
				continue
			}

			components = slices.Delete(components, i, i+1)
			if i != 0 {
				components = slices.Delete(components, i-1, i)
				i--
			}
			continue
		}

		// check whether the path up to this component is a symlink
		currentpath := formatPath(components[:i+1], beginSlash, beginDoubleSlash)

		target, isLink, err := resolve(currentpath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve %q: %w", currentpath, err)
		}

		if !isLink {
			i++
			continue
		}

		if _, seen := cycle[currentpath]; seen {
			return "", fmt.Errorf("failed to canonicalize path %q: %w", path, ErrSymlinkLoop)
		}
		cycle[currentpath] = struct{}{}

		if strings.HasPrefix(target, "/") {
			// kill everything from the beginning including the
			// resolved component, the target replaces it all
			components = slices.Delete(components, 0, i+1)
			beginSlash = true
			beginDoubleSlash = strings.HasPrefix(target[1:], "/") && !strings.HasPrefix(target[2:], "/")
			i = 0
		} else {
			components = slices.Delete(components, i, i+1)
		}

		components = slices.Insert(components, i, splitNonEmpty(target)...)
	}

	return formatPath(components, beginSlash, beginDoubleSlash), nil
}

// OSResolver resolves symlinks against the live filesystem. Paths that
// do not exist are reported as not being symlinks, so nonexistent
// targets can still be normalized.
func OSResolver(path string) (string, bool, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	if fi.Mode()&fs.ModeSymlink == 0 {
		return "", false, nil
	}
	target, err := os.Readlink(path)
	if err != nil {
		return "", false, err
	}
	return target, true, nil
}
