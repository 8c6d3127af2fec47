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

// Package scsikey queries unique device keys through the udev scsi_id
// helper. A device without a key is reported as absent (empty string),
// not as an error; only a failure to run the helper is an error.
package scsikey

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/containerd/log"
)

const scsiIDBinary = "/lib/udev/scsi_id"

const (
	idSerialPrefix     = "ID_SERIAL="
	idTargetPortPrefix = "ID_TARGET_PORT="
)

func runScsiID(ctx context.Context, args ...string) (string, bool, error) {
	cmd := exec.CommandContext(ctx, scsiIDBinary, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// scsi_id exits non-zero for devices it does not
			// manage, which simply means there is no key
			log.G(ctx).WithError(err).Debugf("%s exited non-zero", scsiIDBinary)
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to run %s: %w", scsiIDBinary, err)
	}
	return string(out), true, nil
}

// SCSIKey returns the unique key of the SCSI device at path, or "" when
// the device has none.
func SCSIKey(ctx context.Context, path string) (string, error) {
	out, ok, err := runScsiID(ctx,
		"--replace-whitespace",
		"--whitelisted",
		"--device", path,
	)
	if err != nil || !ok {
		return "", err
	}
	return trimKeyOutput(out), nil
}

// NPIVKey returns the unique key of the NPIV LUN at path. Unlike a
// plain SCSI device an NPIV LUN is identified by the combination of its
// serial and target port.
func NPIVKey(ctx context.Context, path string) (string, error) {
	out, ok, err := runScsiID(ctx,
		"--replace-whitespace",
		"--whitelisted",
		"--export",
		"--device", path,
	)
	if err != nil || !ok {
		return "", err
	}
	return parseNPIVOutput(out), nil
}

// trimKeyOutput truncates the helper output at the first newline.
func trimKeyOutput(out string) string {
	key, _, _ := strings.Cut(out, "\n")
	return key
}

// parseNPIVOutput extracts the ID_SERIAL and ID_TARGET_PORT fields from
// the exported key/value output and combines them into a key. Either
// field missing or empty means the device has no usable key.
func parseNPIVOutput(out string) string {
	var serial, port string
	for _, line := range strings.Split(out, "\n") {
		if v, ok := strings.CutPrefix(line, idSerialPrefix); ok {
			serial = v
		} else if v, ok := strings.CutPrefix(line, idTargetPortPrefix); ok {
			port = v
		}
	}

	if serial == "" || port == "" {
		return ""
	}
	return serial + "_PORT" + port
}
