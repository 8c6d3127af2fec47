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
	"github.com/google/uuid"

	"github.com/containerd/disksource/internal/xmlenc"
)

// AttrLookup supplies scalar values extracted from a configuration
// document. The query is a dotted path relative to the element being
// parsed ("username", "secret.uuid"). The second return value reports
// whether the document carries the attribute at all; this package never
// parses document syntax itself.
type AttrLookup func(query string) (string, bool)

// ParseAuth builds an auth descriptor from document attributes.
func ParseAuth(lookup AttrLookup) (*AuthDef, error) {
	auth := &AuthDef{}

	username, ok := lookup("username")
	if !ok || username == "" {
		return nil, fmt.Errorf("missing username for auth: %w", errdefs.ErrInvalidArgument)
	}
	auth.Username = username

	// Used by the storage pool instead of the secret type field to
	// define whether chap or ceph is being used.
	if authtype, ok := lookup("type"); ok {
		at, err := ParseAuthType(authtype)
		if err != nil {
			return nil, err
		}
		auth.AuthType = at
	}

	secretType, hasSecretType := lookup("secret.type")
	secretUUID, hasUUID := lookup("secret.uuid")
	secretUsage, hasUsage := lookup("secret.usage")

	if !hasSecretType && !hasUUID && !hasUsage {
		return nil, fmt.Errorf("missing secret element in auth: %w", errdefs.ErrInvalidArgument)
	}
	auth.SecretType = secretType

	switch {
	case hasUUID && hasUsage:
		return nil, fmt.Errorf("either secret uuid or usage expected, not both: %w", errdefs.ErrInvalidArgument)
	case hasUUID:
		if _, err := uuid.Parse(secretUUID); err != nil {
			return nil, fmt.Errorf("malformed secret uuid %q: %w", secretUUID, errdefs.ErrInvalidArgument)
		}
		auth.Secret.UUID = secretUUID
	case hasUsage:
		auth.Secret.Usage = secretUsage
	default:
		return nil, fmt.Errorf("missing secret uuid or usage attribute: %w", errdefs.ErrInvalidArgument)
	}

	return auth, nil
}

// Format emits the auth descriptor as a document fragment.
func (a *AuthDef) Format(buf *xmlenc.Buffer) {
	if a.AuthType == AuthTypeNone {
		buf.Escape("<auth username='%s'>\n", a.Username)
	} else {
		buf.Printf("<auth type='%s' ", a.AuthType)
		buf.Escape("username='%s'>\n", a.Username)
	}

	buf.AdjustIndent(2)
	buf.Printf("<secret")
	buf.Escape(" type='%s'", a.SecretType)
	buf.Escape(" uuid='%s'", a.Secret.UUID)
	buf.Escape(" usage='%s'", a.Secret.Usage)
	buf.Printf("/>\n")
	buf.AdjustIndent(-2)
	buf.Printf("</auth>\n")
}

// ParsePR builds a persistent reservation descriptor from document
// attributes. The source sub-element is mandatory for unmanaged
// reservations; its connection type is restricted to "unix" and its
// mode to "client".
func ParsePR(lookup AttrLookup) (*PRDef, error) {
	pr := &PRDef{}

	managed, ok := lookup("managed")
	if !ok {
		return nil, fmt.Errorf("missing managed attribute for reservations: %w", errdefs.ErrInvalidArgument)
	}
	m, err := ParseTristate(managed)
	if err != nil {
		return nil, fmt.Errorf("invalid value for managed: %q: %w", managed, errdefs.ErrInvalidArgument)
	}
	pr.Managed = m

	srctype, hasType := lookup("source.type")
	path, hasPath := lookup("source.path")
	mode, hasMode := lookup("source.mode")

	if pr.Managed == TristateNo || hasType || hasPath || hasMode {
		if !hasType {
			return nil, fmt.Errorf("missing connection type for reservations: %w", errdefs.ErrInvalidArgument)
		}
		if !hasPath {
			return nil, fmt.Errorf("missing path for reservations: %w", errdefs.ErrInvalidArgument)
		}
		if !hasMode {
			return nil, fmt.Errorf("missing connection mode for reservations: %w", errdefs.ErrInvalidArgument)
		}
	}

	if hasType && srctype != "unix" {
		return nil, fmt.Errorf("unsupported connection type for reservations: %q: %w", srctype, errdefs.ErrInvalidArgument)
	}
	if hasMode && mode != "client" {
		return nil, fmt.Errorf("unsupported connection mode for reservations: %q: %w", mode, errdefs.ErrInvalidArgument)
	}

	pr.Path = path
	return pr, nil
}

// Format emits the reservation descriptor as a document fragment. The
// helper connection details of a managed reservation are runtime state
// and are left out of migratable documents.
func (p *PRDef) Format(buf *xmlenc.Buffer, migratable bool) {
	buf.Printf("<reservations managed='%s'", p.Managed)
	if p.Path != "" && (p.Managed == TristateNo || !migratable) {
		buf.Printf(">\n")
		buf.AdjustIndent(2)
		buf.Printf("<source type='unix'")
		buf.Escape(" path='%s'", p.Path)
		buf.Printf(" mode='client'/>\n")
		buf.AdjustIndent(-2)
		buf.Printf("</reservations>\n")
	} else {
		buf.Printf("/>\n")
	}
}

// ParseInitiator extracts the iSCSI initiator IQN. An absent IQN is not
// an error.
func ParseInitiator(lookup AttrLookup) Initiator {
	iqn, _ := lookup("initiator.iqn.name")
	return Initiator{IQN: iqn}
}

// Format emits the initiator as a document fragment. Nothing is emitted
// when no IQN is set.
func (i *Initiator) Format(buf *xmlenc.Buffer) {
	if i.IQN == "" {
		return
	}
	buf.Printf("<initiator>\n")
	buf.AdjustIndent(2)
	buf.Escape("<iqn name='%s'/>\n", i.IQN)
	buf.AdjustIndent(-2)
	buf.Printf("</initiator>\n")
}
