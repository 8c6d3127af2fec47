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

import "strings"

// ActualType returns the type of the source. When the type is
// TypeVolume and the pool reference has been resolved, the actual type
// of the pool volume is returned instead.
func (s *StorageSource) ActualType() Type {
	if s.Type == TypeVolume && s.Pool != nil && s.Pool.ActualType != TypeNone {
		return s.Pool.ActualType
	}
	return s.Type
}

// IsLocalStorage reports whether the source is accessible through a
// local path. NVMe devices are local but not addressed via Path, so
// they are excluded.
func (s *StorageSource) IsLocalStorage() bool {
	switch s.ActualType() {
	case TypeFile, TypeBlock, TypeDir:
		return true
	}
	return false
}

// IsBlockLocal reports whether the source is a locally accessible block
// device. This includes host-mapped iSCSI volumes.
func (s *StorageSource) IsBlockLocal() bool {
	return s.ActualType() == TypeBlock
}

// IsEmpty reports whether the source has no associated host storage,
// such as an empty cdrom drive.
func (s *StorageSource) IsEmpty() bool {
	if s.IsLocalStorage() && s.Path == "" {
		return true
	}
	if s.Type == TypeNone {
		return true
	}
	if s.Type == TypeNetwork && s.Protocol == ProtocolNone {
		return true
	}
	return false
}

// IsRelative reports whether the source is addressed by a relative
// local path. Network, pool and NVMe addressing has no notion of a
// relative path.
func (s *StorageSource) IsRelative() bool {
	if s.Path == "" {
		return false
	}
	switch s.ActualType() {
	case TypeFile, TypeBlock, TypeDir:
		return !strings.HasPrefix(s.Path, "/")
	}
	return false
}

// IsBacking reports whether s is an eligible backing store element.
// Useful as the condition of chain iterators.
func (s *StorageSource) IsBacking() bool {
	return s != nil && s.Type != TypeNone
}

// HasBacking reports whether s has a backing store behind it. This is a
// single-hop check, not a full chain walk.
func (s *StorageSource) HasBacking() bool {
	return s.IsBacking() && s.BackingStore.IsBacking()
}

// IsSameLocation reports whether a and b point to the same storage
// location. Only addressing fields are compared; unrelated metadata
// such as encryption or permissions is ignored.
func (s *StorageSource) IsSameLocation(other *StorageSource) bool {
	// there are multiple possibilities to define an empty source
	if s.IsEmpty() && other.IsEmpty() {
		return true
	}

	if s.ActualType() != other.ActualType() {
		return false
	}

	if s.Path != other.Path ||
		s.Volume != other.Volume ||
		s.Snapshot != other.Snapshot {
		return false
	}

	if s.Type == TypeNetwork {
		if s.Protocol != other.Protocol ||
			len(s.Hosts) != len(other.Hosts) {
			return false
		}
		for i := range s.Hosts {
			if s.Hosts[i] != other.Hosts[i] {
				return false
			}
		}
	}

	if s.Type == TypeNVMe && !s.NVMe.IsEqual(other.NVMe) {
		return false
	}

	return true
}

// IsEqual compares two NVMe descriptors field by field.
func (n *NVMeDef) IsEqual(other *NVMeDef) bool {
	if n == nil && other == nil {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	return n.Namespace == other.Namespace &&
		n.Managed == other.Managed &&
		n.PCIAddr == other.PCIAddr
}

// IsEqual compares the managed state and path of two reservation
// descriptors.
func (p *PRDef) IsEqual(other *PRDef) bool {
	if p == nil && other == nil {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.Managed == other.Managed && p.Path == other.Path
}

// IsManaged reports whether the reservations of this source are managed
// by the hypervisor rather than an externally started helper.
func (p *PRDef) IsManaged() bool {
	return p != nil && p.Managed == TristateYes
}

// ChainHasManagedPR reports whether any element of the backing chain
// requires a hypervisor-managed persistent reservation helper.
func ChainHasManagedPR(src *StorageSource) bool {
	for n := src; n.IsBacking(); n = n.BackingStore {
		if n.PR.IsManaged() {
			return true
		}
	}
	return false
}

// ChainHasNVMe reports whether any element of the backing chain is an
// NVMe device.
func ChainHasNVMe(src *StorageSource) bool {
	for n := src; n.IsBacking(); n = n.BackingStore {
		if n.Type == TypeNVMe {
			return true
		}
	}
	return false
}
