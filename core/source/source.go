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

// Package source models a virtual machine disk's storage source: its
// location, the chain of backing files behind it and the security,
// authentication and reservation metadata attached to each element of
// that chain.
//
// A StorageSource may be shared by reference between multiple readers.
// Mutation of a possibly shared node is never done in place; callers
// obtain a private instance through Copy first.
package source

import "time"

// NetHost is one host entry of a network storage source.
type NetHost struct {
	Transport Transport
	Name      string
	Port      uint
	// Socket is the unix socket path for TransportUnix.
	Socket string
}

// SecretLookup references a secret by either UUID or usage name.
// Exactly one of the two is set.
type SecretLookup struct {
	UUID  string
	Usage string
}

// AuthDef holds authentication credentials for a storage source.
type AuthDef struct {
	Username string
	// SecretType carries the declared type of the secret element.
	// Only the document layer interprets it.
	SecretType string
	AuthType   AuthType
	Secret     SecretLookup
}

// PRDef describes a SCSI persistent reservation helper configuration.
// The connection mode is fixed to "client".
type PRDef struct {
	Managed Tristate
	Path    string
	// MgrAlias is the alias of the pr-manager object instantiated for
	// this reservation.
	MgrAlias string
}

// PCIAddress is the PCI address of an NVMe controller.
type PCIAddress struct {
	Domain   uint
	Bus      uint
	Slot     uint
	Function uint
}

// NVMeDef addresses a namespace of an NVMe device by PCI address.
type NVMeDef struct {
	Namespace uint64
	Managed   Tristate
	PCIAddr   PCIAddress
}

// NetCookie is a single HTTP cookie sent when accessing http(s)
// network storage.
type NetCookie struct {
	Name  string
	Value string
}

// Perms describe ownership and labelling of a local storage file.
type Perms struct {
	Mode  uint32
	UID   int64
	GID   int64
	Label string
}

// Timestamps are the filesystem timestamps of a local storage file.
type Timestamps struct {
	Atime time.Time
	Btime time.Time
	Ctime time.Time
	Mtime time.Time
}

// SecurityLabel is a per-device security label override. Labels on one
// source are unique by model.
type SecurityLabel struct {
	Model   string
	Label   string
	Relabel bool
}

// Slice restricts the source to a byte range of the underlying storage.
type Slice struct {
	Offset   uint64
	Size     uint64
	NodeName string
}

// PoolDef references a storage pool volume. ActualType is filled in
// once the pool indirection has been resolved; until then the source
// is addressed as TypeVolume.
type PoolDef struct {
	Pool       string
	Volume     string
	VolType    Type
	PoolType   int
	ActualType Type
	Mode       PoolMode
}

// Initiator holds the iSCSI initiator IQN used when connecting.
type Initiator struct {
	IQN string
}

// StorageSource is one node of a disk's backing chain.
//
// BackingStore forms a singly linked, caller-acyclic chain owned
// exclusively by its parent; traversal stops at the first node of
// TypeNone. Shared references to a node must treat it as immutable.
type StorageSource struct {
	// ID is the index of this node within its backing chain, used to
	// disambiguate identically named backing targets ("vda[1]").
	ID uint

	Type     Type
	Protocol Protocol
	Format   Format

	Capacity      uint64
	Allocation    uint64
	HasAllocation bool
	Physical      uint64

	Path     string
	Volume   string
	RelPath  string
	Snapshot string
	// ConfigFile is the path of an external configuration file for
	// protocols that use one (rbd).
	ConfigFile string
	Query      string

	// BackingStoreRaw is the unresolved backing file string as stored
	// in the image metadata, with its declared format.
	BackingStoreRaw       string
	BackingStoreRawFormat Format

	BackingStore *StorageSource

	Hosts          []NetHost
	Cookies        []*NetCookie
	Auth           *AuthDef
	Encryption     *EncryptionDef
	Perms          *Perms
	Timestamps     *Timestamps
	SecurityLabels []*SecurityLabel
	PR             *PRDef
	NVMe           *NVMeDef
	Slice          *Slice
	Pool           *PoolDef
	Initiator      Initiator

	ReadOnly bool
	Shared   bool

	// Detected is set on chain elements discovered by probing image
	// metadata rather than parsed from configuration.
	Detected bool
}

// New returns an empty storage source in the zero state.
func New() *StorageSource {
	return &StorageSource{}
}

// Clear releases every owned sub-object, recursively clears the backing
// chain and resets the node to a fresh zero state. It is idempotent.
func (s *StorageSource) Clear() {
	if s == nil {
		return
	}
	s.BackingStore.Clear()
	*s = StorageSource{}
}

// ClearBackingStore drops the information about the backing store of
// this node: the relative path it was looked up by, the raw backing
// string and the owned chain behind it.
func (s *StorageSource) ClearBackingStore() {
	if s == nil {
		return
	}
	s.RelPath = ""
	s.BackingStoreRaw = ""
	s.BackingStore.Clear()
	s.BackingStore = nil
}

// SecurityLabel returns the security label of the given model, or nil
// when the source carries none.
func (s *StorageSource) SecurityLabel(model string) *SecurityLabel {
	for _, l := range s.SecurityLabels {
		if l.Model == model {
			return l
		}
	}
	return nil
}
