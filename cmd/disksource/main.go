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
	"fmt"
	"os"

	"github.com/containerd/log"
	"github.com/urfave/cli/v2"
)

func init() {
	// Override the default flag descriptions for '--version' and
	// '--help' to align with other flags and start with uppercase.
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version",

		DisableDefaultText: true,
	}
	cli.HelpFlag = &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   "Show help",

		DisableDefaultText: true,
	}
}

// App returns a *cli.App instance.
func App() *cli.App {
	app := cli.NewApp()
	app.Name = "disksource"
	app.Usage = "inspect virtual machine disk storage sources"
	app.Description = `
disksource works with the storage source descriptions of virtual machine
disks: it canonicalizes image paths, walks backing chains described in a
TOML document and queries unique device keys through the udev scsi_id
helper.`
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Usage:   "Set the logging level [trace, debug, info, warn, error, fatal, panic]",
		},
	}
	app.Before = func(cliContext *cli.Context) error {
		if lvl := cliContext.String("log-level"); lvl != "" {
			return log.SetLevel(lvl)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		canonicalizeCommand,
		inspectCommand,
		scsiKeyCommand,
		npivKeyCommand,
	}
	return app
}

func main() {
	app := App()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "disksource: %s\n", err)
		os.Exit(1)
	}
}
