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
	"strings"

	"github.com/containerd/errdefs"
)

// see https://tools.ietf.org/html/rfc6265#section-4.1.1
const cookieValueInvalidChars = "\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f" +
	"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f" +
	" \",;\\"

// in addition cookie names can't contain these
const cookieNameInvalidChars = "()<>@:/[]?={}"

// Validate checks the cookie name and value against the cookie grammar.
// The value may be wrapped in one pair of double quotes; the quoted
// content is what is validated.
func (c *NetCookie) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("cookie name must not be empty: %w", errdefs.ErrInvalidArgument)
	}

	if strings.ContainsAny(c.Name, cookieValueInvalidChars) ||
		strings.ContainsAny(c.Name, cookieNameInvalidChars) {
		return fmt.Errorf("cookie name %q contains invalid characters: %w", c.Name, errdefs.ErrInvalidArgument)
	}

	val := c.Value
	if strings.HasPrefix(val, "\"") {
		if len(val) < 2 || !strings.HasSuffix(val, "\"") {
			return fmt.Errorf("value of cookie %q contains invalid characters: %w", c.Name, errdefs.ErrInvalidArgument)
		}
		val = val[1 : len(val)-1]
	}

	if strings.ContainsAny(val, cookieValueInvalidChars) {
		return fmt.Errorf("value of cookie %q contains invalid characters: %w", c.Name, errdefs.ErrInvalidArgument)
	}

	return nil
}

// ValidateCookies validates every cookie of the source and rejects
// duplicate cookie names. Names are compared case sensitively.
func (s *StorageSource) ValidateCookies() error {
	for i, c := range s.Cookies {
		if err := c.Validate(); err != nil {
			return err
		}

		for _, d := range s.Cookies[i+1:] {
			if c.Name == d.Name {
				return fmt.Errorf("duplicate cookie %q: %w", c.Name, errdefs.ErrInvalidArgument)
			}
		}
	}
	return nil
}
