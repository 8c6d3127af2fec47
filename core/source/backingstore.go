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
	"fmt"
	"strconv"
	"strings"

	"github.com/containerd/errdefs"
)

// ParseBackingStoreStr parses a backing store specifier string such as
// "vda[1]" or "sda" into the target device and chain index. A string
// without an index yields index 0. The bracketed suffix must be exactly
// a non-negative integer followed by "]".
func ParseBackingStoreStr(str string) (target string, idx uint, err error) {
	target, suffix, found := strings.Cut(str, "[")
	if !found {
		return target, 0, nil
	}

	digits, ok := strings.CutSuffix(suffix, "]")
	if !ok {
		return "", 0, fmt.Errorf("invalid backing store specifier %q: %w", str, errdefs.ErrInvalidArgument)
	}
	parsed, perr := strconv.ParseUint(digits, 10, 32)
	if perr != nil {
		return "", 0, fmt.Errorf("invalid backing store specifier %q: %w", str, errdefs.ErrInvalidArgument)
	}

	return target, uint(parsed), nil
}

// ParseChainIndex extracts the backing chain index from a user provided
// disambiguation string. An absent name, an unparseable name or a
// parsed index of 0 all yield index 0 without error; a non-zero index
// whose target does not match diskTarget is an error.
func ParseChainIndex(diskTarget, name string) (uint, error) {
	if name == "" || diskTarget == "" {
		return 0, nil
	}

	target, idx, err := ParseBackingStoreStr(name)
	if err != nil || idx == 0 {
		return 0, nil
	}

	if target != diskTarget {
		return 0, fmt.Errorf("requested target %q does not match target %q: %w",
			target, diskTarget, errdefs.ErrInvalidArgument)
	}

	return idx, nil
}

// IsFileBacking reports whether a backing file string names a file
// rather than a network protocol such as "nbd:" or "rbd:". A relative
// file name containing ':' can be forced by prefixing "./".
func IsFileBacking(backing string) bool {
	if backing == "" {
		return false
	}

	colon := strings.IndexByte(backing, ':')
	slash := strings.IndexByte(backing, '/')

	if colon >= 0 && (slash < 0 || colon < slash) {
		return false
	}
	return true
}

// IsRelativeBacking reports whether a backing file string is a relative
// file path.
func IsRelativeBacking(backing string) bool {
	if strings.HasPrefix(backing, "/") {
		return false
	}
	return IsFileBacking(backing)
}
