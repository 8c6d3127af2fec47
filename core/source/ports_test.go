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

	"github.com/stretchr/testify/assert"
)

func TestDefaultPort(t *testing.T) {
	tcases := []struct {
		protocol Protocol
		port     uint
	}{
		{ProtocolHTTP, 80},
		{ProtocolHTTPS, 443},
		{ProtocolFTP, 21},
		{ProtocolFTPS, 990},
		{ProtocolTFTP, 69},
		{ProtocolSheepdog, 7000},
		{ProtocolNBD, 10809},
		{ProtocolSSH, 22},
		{ProtocolISCSI, 3260},
		{ProtocolGluster, 24007},
		{ProtocolVxHS, 9999},
		// no sensible default exists
		{ProtocolRBD, 0},
		{ProtocolNFS, 0},
		{ProtocolNone, 0},
	}

	for _, tc := range tcases {
		assert.Equal(t, tc.port, DefaultPort(tc.protocol), "default port of %s", tc.protocol)
	}
}

func TestAssignDefaultPorts(t *testing.T) {
	src := &StorageSource{
		Type:     TypeNetwork,
		Protocol: ProtocolISCSI,
		Hosts: []NetHost{
			{Transport: TransportTCP, Name: "a.example.com"},
			{Transport: TransportTCP, Name: "b.example.com", Port: 3261},
			{Transport: TransportUnix, Socket: "/run/iscsi.sock"},
			{Transport: TransportRDMA, Name: "c.example.com"},
		},
	}

	src.AssignDefaultPorts()

	assert.Equal(t, uint(3260), src.Hosts[0].Port)
	// explicit ports are kept
	assert.Equal(t, uint(3261), src.Hosts[1].Port)
	// only TCP entries are defaulted
	assert.Equal(t, uint(0), src.Hosts[2].Port)
	assert.Equal(t, uint(0), src.Hosts[3].Port)
}
