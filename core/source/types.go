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

// Type identifies the kind of location a storage source addresses.
type Type uint8

const (
	TypeNone Type = iota
	TypeFile
	TypeBlock
	TypeDir
	TypeNetwork
	TypeVolume
	TypeNVMe
)

var typeNames = [...]string{
	TypeNone:    "none",
	TypeFile:    "file",
	TypeBlock:   "block",
	TypeDir:     "dir",
	TypeNetwork: "network",
	TypeVolume:  "volume",
	TypeNVMe:    "nvme",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// ParseType parses the string representation of a storage type.
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if s == name {
			return Type(i), nil
		}
	}
	return TypeNone, fmt.Errorf("unknown storage type %q: %w", s, errdefs.ErrInvalidArgument)
}

// Protocol identifies the network protocol used to access a network
// storage source.
type Protocol uint8

const (
	ProtocolNone Protocol = iota
	ProtocolNBD
	ProtocolRBD
	ProtocolSheepdog
	ProtocolGluster
	ProtocolISCSI
	ProtocolHTTP
	ProtocolHTTPS
	ProtocolFTP
	ProtocolFTPS
	ProtocolTFTP
	ProtocolSSH
	ProtocolVxHS
	ProtocolNFS
)

var protocolNames = [...]string{
	ProtocolNone:     "none",
	ProtocolNBD:      "nbd",
	ProtocolRBD:      "rbd",
	ProtocolSheepdog: "sheepdog",
	ProtocolGluster:  "gluster",
	ProtocolISCSI:    "iscsi",
	ProtocolHTTP:     "http",
	ProtocolHTTPS:    "https",
	ProtocolFTP:      "ftp",
	ProtocolFTPS:     "ftps",
	ProtocolTFTP:     "tftp",
	ProtocolSSH:      "ssh",
	ProtocolVxHS:     "vxhs",
	ProtocolNFS:      "nfs",
}

func (p Protocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// ParseProtocol parses the string representation of a network protocol.
func ParseProtocol(s string) (Protocol, error) {
	for i, name := range protocolNames {
		if s == name {
			return Protocol(i), nil
		}
	}
	return ProtocolNone, fmt.Errorf("unknown network protocol %q: %w", s, errdefs.ErrInvalidArgument)
}

// Format identifies an image file format.
type Format uint8

const (
	FormatNone Format = iota
	FormatRaw
	FormatDir
	FormatBochs
	FormatCloop
	FormatDMG
	FormatISO
	FormatVPC
	FormatVDI

	// Not direct file formats, but used for various drivers.
	FormatFAT
	FormatVHD
	FormatPloop

	// Formats with backing file below here.
	FormatCow
	FormatQcow
	FormatQcow2
	FormatQed
	FormatVMDK
)

var formatNames = [...]string{
	FormatNone:  "none",
	FormatRaw:   "raw",
	FormatDir:   "dir",
	FormatBochs: "bochs",
	FormatCloop: "cloop",
	FormatDMG:   "dmg",
	FormatISO:   "iso",
	FormatVPC:   "vpc",
	FormatVDI:   "vdi",
	FormatFAT:   "fat",
	FormatVHD:   "vhd",
	FormatPloop: "ploop",
	FormatCow:   "cow",
	FormatQcow:  "qcow",
	FormatQcow2: "qcow2",
	FormatQed:   "qed",
	FormatVMDK:  "vmdk",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat parses the string representation of an image format.
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return FormatNone, fmt.Errorf("unknown image format %q: %w", s, errdefs.ErrInvalidArgument)
}

// HasBackingFormat reports whether images of format f carry a backing
// file reference.
func (f Format) HasBackingFormat() bool {
	return f >= FormatCow && f <= FormatVMDK
}

// Transport identifies the transport used to reach a network host.
type Transport uint8

const (
	TransportTCP Transport = iota
	TransportUnix
	TransportRDMA
)

var transportNames = [...]string{
	TransportTCP:  "tcp",
	TransportUnix: "unix",
	TransportRDMA: "rdma",
}

func (t Transport) String() string {
	if int(t) < len(transportNames) {
		return transportNames[t]
	}
	return "unknown"
}

// ParseTransport parses the string representation of a host transport.
func ParseTransport(s string) (Transport, error) {
	for i, name := range transportNames {
		if s == name {
			return Transport(i), nil
		}
	}
	return TransportTCP, fmt.Errorf("unknown host transport %q: %w", s, errdefs.ErrInvalidArgument)
}

// AuthType identifies the authentication scheme of an AuthDef.
type AuthType uint8

const (
	AuthTypeNone AuthType = iota
	AuthTypeCHAP
	AuthTypeCeph
)

var authTypeNames = [...]string{
	AuthTypeNone: "none",
	AuthTypeCHAP: "chap",
	AuthTypeCeph: "ceph",
}

func (a AuthType) String() string {
	if int(a) < len(authTypeNames) {
		return authTypeNames[a]
	}
	return "unknown"
}

// ParseAuthType parses the string representation of an auth type.
func ParseAuthType(s string) (AuthType, error) {
	for i, name := range authTypeNames {
		if s == name {
			return AuthType(i), nil
		}
	}
	return AuthTypeNone, fmt.Errorf("unknown auth type %q: %w", s, errdefs.ErrInvalidArgument)
}

// PoolMode controls how a pool-backed volume is accessed.
type PoolMode uint8

const (
	PoolModeDefault PoolMode = iota
	PoolModeHost
	PoolModeDirect
)

var poolModeNames = [...]string{
	PoolModeDefault: "default",
	PoolModeHost:    "host",
	PoolModeDirect:  "direct",
}

func (m PoolMode) String() string {
	if int(m) < len(poolModeNames) {
		return poolModeNames[m]
	}
	return "unknown"
}

// Tristate is a three-valued flag where the unspecified state is
// distinct from an explicit "no".
type Tristate uint8

const (
	TristateUnspecified Tristate = iota
	TristateYes
	TristateNo
)

var tristateNames = [...]string{
	TristateUnspecified: "",
	TristateYes:         "yes",
	TristateNo:          "no",
}

func (t Tristate) String() string {
	if int(t) < len(tristateNames) {
		return tristateNames[t]
	}
	return ""
}

// ParseTristate parses "yes" or "no". The empty string is not a valid
// spelling of the unspecified state in documents.
func ParseTristate(s string) (Tristate, error) {
	switch s {
	case "yes":
		return TristateYes, nil
	case "no":
		return TristateNo, nil
	}
	return TristateUnspecified, fmt.Errorf("invalid tristate value %q: %w", s, errdefs.ErrInvalidArgument)
}
