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

	"github.com/containerd/disksource/pkg/canonpath"
)

var canonicalizeCommand = &cli.Command{
	Name:      "canonicalize",
	Usage:     "Resolve a path to its canonical, symlink-free form",
	ArgsUsage: "<path>",
	Action: func(cliContext *cli.Context) error {
		path := cliContext.Args().First()
		if path == "" {
			return errors.New("please provide a path to canonicalize")
		}

		resolved, err := canonpath.Canonicalize(path, canonpath.OSResolver)
		if err != nil {
			return err
		}
		fmt.Println(resolved)
		return nil
	},
}
