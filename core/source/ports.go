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

// DefaultPort returns the default TCP port of a network protocol, or 0
// for protocols without one (rbd, nfs).
func DefaultPort(p Protocol) uint {
	switch p {
	case ProtocolHTTP:
		return 80
	case ProtocolHTTPS:
		return 443
	case ProtocolFTP:
		return 21
	case ProtocolFTPS:
		return 990
	case ProtocolTFTP:
		return 69
	case ProtocolSheepdog:
		return 7000
	case ProtocolNBD:
		return 10809
	case ProtocolSSH:
		return 22
	case ProtocolISCSI:
		return 3260
	case ProtocolGluster:
		return 24007
	case ProtocolVxHS:
		return 9999
	}
	return 0
}

// AssignDefaultPorts fills in the protocol default port on every TCP
// host entry that has no explicit port, so that no entry is left with
// an ambiguous port after normalization.
func (s *StorageSource) AssignDefaultPorts() {
	for i := range s.Hosts {
		if s.Hosts[i].Transport == TransportTCP && s.Hosts[i].Port == 0 {
			s.Hosts[i].Port = DefaultPort(s.Protocol)
		}
	}
}
