/*
Copyright (c) Facebook, Inc. and its affiliates.

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

package cmd

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/facebook/ethtool/ethtool"
)

var funcs = template.FuncMap{
	"speed":  speedString,
	"duplex": duplexString,
	"port":   portString,
	"onoff":  onOff,
	"link":   linkString,
}

var tmpl = template.Must(template.New("").Funcs(funcs).Parse(`
{{- define "settings"}}
	Speed: {{speed .Speed}}
	Duplex: {{duplex .Duplex}}
	Port: {{port .Port}}
	PHYAD: {{.PhyAddress}}
	Transceiver: {{.Transceiver}}
	Auto-negotiation: {{onoff .Autoneg}}
	Supported: {{printf "%#x" .Supported}}
	Advertising: {{printf "%#x" .Advertising}}
	Link partner advertising: {{printf "%#x" .LpAdvertising}}
{{- end}}
{{- define "linksettings"}}
	Speed: {{speed .Speed}}
	Duplex: {{duplex .Duplex}}
	Port: {{port .Port}}
	PHYAD: {{.PhyAddress}}
	Transceiver: {{.Transceiver}}
	Auto-negotiation: {{onoff .Autoneg}}
	Link mode mask words: {{.MaskWords}} ({{.LinkModeMasksNwords}})
{{- end}}
{{- define "drvinfo"}}
	Driver: {{.Driver}}
	Version: {{.Version}}
	Firmware version: {{.FwVersion}}
	Expansion ROM version: {{.EromVersion}}
	Bus info: {{.BusInfo}}
	Statistics: {{.NStats}}
	Private flags: {{.NPrivFlags}}
{{- end}}
{{- define "link"}}
	Link detected: {{link .}}
{{- end}}
{{- define "detail"}}
{{- template "settings" .Settings}}
{{- template "drvinfo" .DrvInfo}}
{{- template "link" .Link}}
{{- end}}`))

// printBlock prints the interface name followed by the named template block
func printBlock(w io.Writer, iface, block string, data interface{}) error {
	if _, err := fmt.Fprintf(w, "%s:", iface); err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(w, block, data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// queryCmd registers a subcommand which runs f against a single interface
func queryCmd(use, short string, f func(c *ethtool.Client, iface string) error) {
	cmd := &cobra.Command{
		Use:   use + " [eth0]",
		Short: short,
		RunE: func(_ *cobra.Command, args []string) error {
			ConfigureVerbosity()
			iface, err := ifaceArg(args)
			if err != nil {
				return err
			}
			return withClient(func(c *ethtool.Client) error {
				if err := f(c, iface); err != nil {
					return fmt.Errorf("%s: %s: %w", iface, use, err)
				}
				return nil
			})
		},
	}
	RootCmd.AddCommand(cmd)
}

func init() {
	queryCmd("detail", "Print settings, driver info and link status", func(c *ethtool.Client, iface string) error {
		d, err := c.Detail(iface)
		if err != nil {
			return err
		}
		dump(d)
		return printBlock(os.Stdout, iface, "detail", d)
	})
	queryCmd("settings", "Print link settings (ETHTOOL_GSET)", func(c *ethtool.Client, iface string) error {
		s, err := c.Settings(iface)
		if err != nil {
			return err
		}
		dump(s)
		return printBlock(os.Stdout, iface, "settings", s)
	})
	queryCmd("linksettings", "Print link settings header (ETHTOOL_GLINKSETTINGS)", func(c *ethtool.Client, iface string) error {
		l, err := c.LinkSettings(iface)
		if err != nil {
			return err
		}
		dump(l)
		return printBlock(os.Stdout, iface, "linksettings", l)
	})
	queryCmd("drvinfo", "Print driver information (ETHTOOL_GDRVINFO)", func(c *ethtool.Client, iface string) error {
		d, err := c.DrvInfo(iface)
		if err != nil {
			return err
		}
		dump(d)
		return printBlock(os.Stdout, iface, "drvinfo", d)
	})
	queryCmd("link", "Print whether link is detected (ETHTOOL_GLINK)", func(c *ethtool.Client, iface string) error {
		up, err := c.LinkStatus(iface)
		if err != nil {
			return err
		}
		return printBlock(os.Stdout, iface, "link", up)
	})
	queryCmd("flags", "Print interface flags", func(c *ethtool.Client, iface string) error {
		f, err := c.Flags(iface)
		if err != nil {
			return err
		}
		fmt.Printf("%s: flags=%d<%s>\n", iface, f, f)
		return nil
	})
	queryCmd("mtu", "Print interface MTU", func(c *ethtool.Client, iface string) error {
		mtu, err := c.MTU(iface)
		if err != nil {
			return err
		}
		fmt.Printf("%s: mtu %d\n", iface, mtu)
		return nil
	})
	queryCmd("hwaddr", "Print interface MAC address", func(c *ethtool.Client, iface string) error {
		mac, err := c.HardwareAddr(iface)
		if err != nil {
			return err
		}
		fmt.Printf("%s: ether %s\n", iface, mac)
		return nil
	})
	queryCmd("ipaddr", "Print primary IPv4 address of the interface", func(c *ethtool.Client, iface string) error {
		ip, err := c.IPAddr(iface)
		if err != nil {
			return err
		}
		fmt.Printf("%s: inet %s\n", iface, ip)
		return nil
	})
}
