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

// copyNetHosts returns a deep copy of a host array.
func copyNetHosts(hosts []NetHost) []NetHost {
	if len(hosts) == 0 {
		return nil
	}
	ret := make([]NetHost, len(hosts))
	copy(ret, hosts)
	return ret
}

// Copy returns a deep copy of the auth descriptor.
func (a *AuthDef) Copy() *AuthDef {
	if a == nil {
		return nil
	}
	ret := *a
	return &ret
}

// Copy returns a deep copy of the reservation descriptor.
func (p *PRDef) Copy() *PRDef {
	if p == nil {
		return nil
	}
	ret := *p
	return &ret
}

// Copy returns a deep copy of the NVMe descriptor.
func (n *NVMeDef) Copy() *NVMeDef {
	if n == nil {
		return nil
	}
	ret := *n
	return &ret
}

// Copy returns a deep copy of the permission record.
func (p *Perms) Copy() *Perms {
	if p == nil {
		return nil
	}
	ret := *p
	return &ret
}

// Copy returns a deep copy of the timestamp record.
func (t *Timestamps) Copy() *Timestamps {
	if t == nil {
		return nil
	}
	ret := *t
	return &ret
}

// Copy returns a deep copy of the security label.
func (l *SecurityLabel) Copy() *SecurityLabel {
	if l == nil {
		return nil
	}
	ret := *l
	return &ret
}

// Copy returns a deep copy of the slice descriptor.
func (s *Slice) Copy() *Slice {
	if s == nil {
		return nil
	}
	ret := *s
	return &ret
}

// Copy returns a deep copy of the pool reference.
func (p *PoolDef) Copy() *PoolDef {
	if p == nil {
		return nil
	}
	ret := *p
	return &ret
}

func copySecurityLabels(labels []*SecurityLabel) []*SecurityLabel {
	if len(labels) == 0 {
		return nil
	}
	ret := make([]*SecurityLabel, len(labels))
	for i, l := range labels {
		ret[i] = l.Copy()
	}
	return ret
}

func copyCookies(cookies []*NetCookie) []*NetCookie {
	if len(cookies) == 0 {
		return nil
	}
	ret := make([]*NetCookie, len(cookies))
	for i, c := range cookies {
		cc := *c
		ret[i] = &cc
	}
	return ret
}

// Copy deep-copies the storage source. If backingChain is true the
// backing chain is copied recursively to the same depth, otherwise the
// copy's chain reference is left empty. The receiver is never modified
// and the returned node shares no mutable state with it.
func (s *StorageSource) Copy(backingChain bool) *StorageSource {
	if s == nil {
		return nil
	}

	ret := &StorageSource{
		ID:            s.ID,
		Type:          s.Type,
		Protocol:      s.Protocol,
		Format:        s.Format,
		Capacity:      s.Capacity,
		Allocation:    s.Allocation,
		HasAllocation: s.HasAllocation,
		Physical:      s.Physical,
		ReadOnly:      s.ReadOnly,
		Shared:        s.Shared,
		Detected:      s.Detected,

		Path:       s.Path,
		Volume:     s.Volume,
		RelPath:    s.RelPath,
		Snapshot:   s.Snapshot,
		ConfigFile: s.ConfigFile,
		Query:      s.Query,

		BackingStoreRaw:       s.BackingStoreRaw,
		BackingStoreRawFormat: s.BackingStoreRawFormat,

		Initiator: s.Initiator,
	}

	ret.Hosts = copyNetHosts(s.Hosts)
	ret.Cookies = copyCookies(s.Cookies)
	ret.SecurityLabels = copySecurityLabels(s.SecurityLabels)

	ret.Auth = s.Auth.Copy()
	ret.Encryption = s.Encryption.Copy()
	ret.Perms = s.Perms.Copy()
	ret.Timestamps = s.Timestamps.Copy()
	ret.PR = s.PR.Copy()
	ret.NVMe = s.NVMe.Copy()
	ret.Slice = s.Slice.Copy()
	ret.Pool = s.Pool.Copy()

	if backingChain && s.BackingStore != nil {
		ret.BackingStore = s.BackingStore.Copy(true)
	}

	return ret
}

// InitChainElement transfers relevant information from an existing disk
// source to a backing chain element discovered dynamically, for example
// by probing an image format.
//
// Security labels are copied from old only when newelem has none yet
// and transferLabels is requested. The shared and readonly flags are
// propagated unconditionally.
func InitChainElement(newelem, old *StorageSource, transferLabels bool) {
	if transferLabels && len(newelem.SecurityLabels) == 0 {
		newelem.SecurityLabels = copySecurityLabels(old.SecurityLabels)
	}

	newelem.Shared = old.Shared
	newelem.ReadOnly = old.ReadOnly
}
