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

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/containerd/disksource/pkg/scsikey"
)

var scsiKeyCommand = &cli.Command{
	Name:      "scsi-key",
	Usage:     "Print the unique key of a SCSI device",
	ArgsUsage: "<device>",
	Action: func(cliContext *cli.Context) error {
		device := cliContext.Args().First()
		if device == "" {
			return errors.New("please provide a device path")
		}

		key, err := scsikey.SCSIKey(cliContext.Context, device)
		if err != nil {
			return err
		}
		if key == "" {
			return fmt.Errorf("device %q has no key", device)
		}
		fmt.Println(key)
		return nil
	},
}

var npivKeyCommand = &cli.Command{
	Name:      "npiv-key",
	Usage:     "Print the unique key of an NPIV LUN",
	ArgsUsage: "<device>",
	Action: func(cliContext *cli.Context) error {
		device := cliContext.Args().First()
		if device == "" {
			return errors.New("please provide a device path")
		}

		key, err := scsikey.NPIVKey(cliContext.Context, device)
		if err != nil {
			return err
		}
		if key == "" {
			return fmt.Errorf("device %q has no key", device)
		}
		fmt.Println(key)
		return nil
	},
}
