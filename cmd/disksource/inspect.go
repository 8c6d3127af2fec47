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
	"os"
	"text/tabwriter"

	"github.com/docker/go-units"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"

	"github.com/containerd/disksource/core/source"
)

type hostConfig struct {
	Transport string `toml:"transport"`
	Name      string `toml:"name"`
	Port      uint   `toml:"port"`
	Socket    string `toml:"socket"`
}

type cookieConfig struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

type sourceConfig struct {
	Type     string `toml:"type"`
	Format   string `toml:"format"`
	Protocol string `toml:"protocol"`
	Path     string `toml:"path"`
	Volume   string `toml:"volume"`
	Snapshot string `toml:"snapshot"`
	// Capacity is a human readable size ("10GB", "512MiB").
	Capacity string `toml:"capacity"`
	ReadOnly bool   `toml:"readonly"`
	Shared   bool   `toml:"shared"`

	Hosts   []hostConfig   `toml:"host"`
	Cookies []cookieConfig `toml:"cookie"`
}

type diskConfig struct {
	Target string `toml:"target"`
	// Sources describe the backing chain, topmost image first.
	Sources []sourceConfig `toml:"source"`
}

func buildSource(id uint, cfg sourceConfig) (*source.StorageSource, error) {
	if cfg.Type == "" {
		return nil, fmt.Errorf("source %d: missing type", id)
	}

	src := source.New()
	src.ID = id
	src.ReadOnly = cfg.ReadOnly
	src.Shared = cfg.Shared
	src.Path = cfg.Path
	src.Volume = cfg.Volume
	src.Snapshot = cfg.Snapshot

	var err error
	if src.Type, err = source.ParseType(cfg.Type); err != nil {
		return nil, err
	}
	if cfg.Format != "" {
		if src.Format, err = source.ParseFormat(cfg.Format); err != nil {
			return nil, err
		}
	}
	if cfg.Protocol != "" {
		if src.Protocol, err = source.ParseProtocol(cfg.Protocol); err != nil {
			return nil, err
		}
	}
	if cfg.Capacity != "" {
		capacity, err := units.RAMInBytes(cfg.Capacity)
		if err != nil {
			return nil, fmt.Errorf("source %d: invalid capacity %q: %w", id, cfg.Capacity, err)
		}
		src.Capacity = uint64(capacity)
	}

	for _, h := range cfg.Hosts {
		transport := source.TransportTCP
		if h.Transport != "" {
			if transport, err = source.ParseTransport(h.Transport); err != nil {
				return nil, err
			}
		}
		src.Hosts = append(src.Hosts, source.NetHost{
			Transport: transport,
			Name:      h.Name,
			Port:      h.Port,
			Socket:    h.Socket,
		})
	}

	for _, c := range cfg.Cookies {
		src.Cookies = append(src.Cookies, &source.NetCookie{Name: c.Name, Value: c.Value})
	}
	if err := src.ValidateCookies(); err != nil {
		return nil, err
	}

	src.AssignDefaultPorts()
	return src, nil
}

func buildChain(cfg *diskConfig) (*source.StorageSource, error) {
	if len(cfg.Sources) == 0 {
		return nil, errors.New("no sources defined")
	}

	var top, prev *source.StorageSource
	for i, sc := range cfg.Sources {
		src, err := buildSource(uint(i), sc)
		if err != nil {
			return nil, err
		}
		if prev == nil {
			top = src
		} else {
			prev.BackingStore = src
		}
		prev = src
	}
	return top, nil
}

// location renders the addressing fields of a node for display.
func location(src *source.StorageSource) string {
	switch src.ActualType() {
	case source.TypeNetwork:
		host := "-"
		if len(src.Hosts) > 0 {
			h := src.Hosts[0]
			if h.Transport == source.TransportUnix {
				host = h.Socket
			} else {
				host = fmt.Sprintf("%s:%d", h.Name, h.Port)
			}
		}
		return fmt.Sprintf("%s://%s%s", src.Protocol, host, src.Path)
	case source.TypeVolume:
		return src.Volume
	case source.TypeNVMe:
		if src.NVMe != nil {
			a := src.NVMe.PCIAddr
			return fmt.Sprintf("nvme %04x:%02x:%02x.%x ns %d", a.Domain, a.Bus, a.Slot, a.Function, src.NVMe.Namespace)
		}
		return "nvme"
	}
	if src.Path == "" {
		return "-"
	}
	return src.Path
}

var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "Print the backing chain described by a disk document",
	ArgsUsage: "[flags]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the disk description",
			Value:   "disk.toml",
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "Select a single chain element by target disambiguation string, e.g. 'vda[1]'",
		},
	},
	Action: func(cliContext *cli.Context) error {
		data, err := os.ReadFile(cliContext.String("config"))
		if err != nil {
			return err
		}

		var cfg diskConfig
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("failed to decode disk description: %w", err)
		}

		top, err := buildChain(&cfg)
		if err != nil {
			return err
		}

		only := ^uint(0)
		if name := cliContext.String("name"); name != "" {
			idx, err := source.ParseChainIndex(cfg.Target, name)
			if err != nil {
				return err
			}
			only = idx
		}

		tw := tabwriter.NewWriter(os.Stdout, 1, 8, 1, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tTYPE\tFORMAT\tLOCATION\tCAPACITY\tLOCAL\tEMPTY")
		for n := top; n.IsBacking(); n = n.BackingStore {
			if only != ^uint(0) && n.ID != only {
				continue
			}
			capacity := "-"
			if n.Capacity != 0 {
				capacity = units.HumanSize(float64(n.Capacity))
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\t%t\n",
				n.ID,
				n.ActualType(),
				n.Format,
				location(n),
				capacity,
				n.IsLocalStorage(),
				n.IsEmpty(),
			)
		}
		return tw.Flush()
	},
}
