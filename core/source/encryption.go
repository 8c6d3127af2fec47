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

	"github.com/containerd/errdefs"
)

// EncryptionFormat identifies the encryption scheme of an image.
type EncryptionFormat uint8

const (
	EncryptionFormatDefault EncryptionFormat = iota
	EncryptionFormatQcow
	EncryptionFormatLUKS
)

var encryptionFormatNames = [...]string{
	EncryptionFormatDefault: "default",
	EncryptionFormatQcow:    "qcow",
	EncryptionFormatLUKS:    "luks",
}

func (f EncryptionFormat) String() string {
	if int(f) < len(encryptionFormatNames) {
		return encryptionFormatNames[f]
	}
	return "unknown"
}

// ParseEncryptionFormat parses the string representation of an
// encryption format.
func ParseEncryptionFormat(s string) (EncryptionFormat, error) {
	for i, name := range encryptionFormatNames {
		if s == name {
			return EncryptionFormat(i), nil
		}
	}
	return EncryptionFormatDefault, fmt.Errorf("unknown encryption format %q: %w", s, errdefs.ErrInvalidArgument)
}

// EncryptionSecret references the secret unlocking an encrypted image.
type EncryptionSecret struct {
	// Type of the secret, currently always "passphrase".
	Type   string
	Secret SecretLookup
}

// EncryptionDef describes the encryption of a storage source.
type EncryptionDef struct {
	Format  EncryptionFormat
	Secrets []EncryptionSecret

	// PayloadOffset is the offset of the data payload in 512 byte
	// sectors, detected from LUKS headers.
	PayloadOffset uint64
}

// Copy returns a deep copy of the encryption descriptor.
func (e *EncryptionDef) Copy() *EncryptionDef {
	if e == nil {
		return nil
	}
	ret := &EncryptionDef{
		Format:        e.Format,
		PayloadOffset: e.PayloadOffset,
	}
	if len(e.Secrets) > 0 {
		ret.Secrets = make([]EncryptionSecret, len(e.Secrets))
		copy(ret.Secrets, e.Secrets)
	}
	return ret
}
