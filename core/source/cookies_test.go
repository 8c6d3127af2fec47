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

func TestNetCookieValidate(t *testing.T) {
	tcases := []struct {
		name      string
		cookie    NetCookie
		expectErr bool
	}{
		{
			name:   "plain cookie",
			cookie: NetCookie{Name: "session", Value: "abc123"},
		},
		{
			name:   "quoted value",
			cookie: NetCookie{Name: "session", Value: "\"ok\""},
		},
		{
			name:      "empty name",
			cookie:    NetCookie{Name: "", Value: "v"},
			expectErr: true,
		},
		{
			name:      "semicolon in name",
			cookie:    NetCookie{Name: "a;b", Value: "v"},
			expectErr: true,
		},
		{
			name:      "name-only invalid character",
			cookie:    NetCookie{Name: "a=b", Value: "v"},
			expectErr: true,
		},
		{
			name:      "space in value",
			cookie:    NetCookie{Name: "n", Value: "a b"},
			expectErr: true,
		},
		{
			name:      "control byte in value",
			cookie:    NetCookie{Name: "n", Value: "a\x01b"},
			expectErr: true,
		},
		{
			name:      "unterminated quote",
			cookie:    NetCookie{Name: "n", Value: "\"oops"},
			expectErr: true,
		},
		{
			name:      "single quote character",
			cookie:    NetCookie{Name: "n", Value: "\""},
			expectErr: true,
		},
		{
			name:      "quote inside quoted value",
			cookie:    NetCookie{Name: "n", Value: "\"a\"b\""},
			expectErr: true,
		},
		{
			name:   "equals sign allowed in value",
			cookie: NetCookie{Name: "n", Value: "a=b"},
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cookie.Validate()
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errdefs.IsInvalidArgument(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateCookies(t *testing.T) {
	src := New()
	src.Cookies = []*NetCookie{
		{Name: "sess", Value: "1"},
		{Name: "other", Value: "2"},
	}
	require.NoError(t, src.ValidateCookies())

	src.Cookies = append(src.Cookies, &NetCookie{Name: "sess", Value: "3"})
	err := src.ValidateCookies()
	require.Error(t, err)
	assert.True(t, errdefs.IsInvalidArgument(err))
	assert.ErrorContains(t, err, "duplicate cookie")

	// names are case sensitive
	src.Cookies[2].Name = "SESS"
	require.NoError(t, src.ValidateCookies())
}
