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
	"net"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/ethtool/ethtool"
	"github.com/facebook/ethtool/exporter"
)

func init() {
	RootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List non-loopback network interfaces with their basic attributes",
	RunE:  runLsCmd,
}

// ifaceQuerier is the part of ethtool.Client needed to build a listing row
type ifaceQuerier interface {
	Flags(name string) (ethtool.IFF, error)
	MTU(name string) (int, error)
	HardwareAddr(name string) (net.HardwareAddr, error)
	IPAddr(name string) (net.IP, error)
	LinkStatus(name string) (bool, error)
	Settings(name string) (*ethtool.Settings, error)
	DrvInfo(name string) (*ethtool.DrvInfo, error)
}

var lsHeader = []string{"Interface", "Flags", "MTU", "MAC", "IPv4", "Link", "Speed", "Driver"}

// lsRow queries every column independently, a failed query leaves "-" in its cell
func lsRow(q ifaceQuerier, iface string) []string {
	row := []string{iface, "-", "-", "-", "-", "-", "-", "-"}
	if f, err := q.Flags(iface); err == nil {
		row[1] = f.String()
	} else {
		log.Debugf("%s: flags: %v", iface, err)
	}
	if mtu, err := q.MTU(iface); err == nil {
		row[2] = fmt.Sprint(mtu)
	} else {
		log.Debugf("%s: mtu: %v", iface, err)
	}
	if mac, err := q.HardwareAddr(iface); err == nil {
		row[3] = mac.String()
	} else {
		log.Debugf("%s: hwaddr: %v", iface, err)
	}
	if ip, err := q.IPAddr(iface); err == nil {
		row[4] = ip.String()
	} else {
		// no address assigned is the common case
		log.Debugf("%s: ipaddr: %v", iface, err)
	}
	if up, err := q.LinkStatus(iface); err == nil {
		row[5] = linkString(up)
	} else {
		log.Debugf("%s: link: %v", iface, err)
	}
	if s, err := q.Settings(iface); err == nil {
		row[6] = speedString(s.Speed)
	} else {
		log.Debugf("%s: settings: %v", iface, err)
	}
	if d, err := q.DrvInfo(iface); err == nil {
		row[7] = d.Driver
	} else {
		log.Debugf("%s: drvinfo: %v", iface, err)
	}
	return row
}

// renderTable writes rows as a table with lsHeader
func renderTable(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(lsHeader)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func runLsCmd(_ *cobra.Command, _ []string) error {
	ConfigureVerbosity()

	ifaces, err := exporter.Discover()
	if err != nil {
		return err
	}
	return withClient(func(c *ethtool.Client) error {
		rows := make([][]string, 0, len(ifaces))
		for _, iface := range ifaces {
			rows = append(rows, lsRow(c, iface))
		}
		return renderTable(os.Stdout, rows)
	})
}
