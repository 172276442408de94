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
	"bytes"
	"fmt"
	"net"
	"strings"
	"syscall"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/facebook/ethtool/ethtool"
)

type fakeQuerier struct {
	flags    ethtool.IFF
	mtu      int
	mac      net.HardwareAddr
	ip       net.IP
	link     bool
	settings *ethtool.Settings
	drvinfo  *ethtool.DrvInfo
	err      error
	calls    []string
}

func (f *fakeQuerier) call(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeQuerier) Flags(string) (ethtool.IFF, error) {
	return f.flags, f.call("flags")
}

func (f *fakeQuerier) MTU(string) (int, error) {
	return f.mtu, f.call("mtu")
}

func (f *fakeQuerier) HardwareAddr(string) (net.HardwareAddr, error) {
	return f.mac, f.call("hwaddr")
}

func (f *fakeQuerier) IPAddr(string) (net.IP, error) {
	return f.ip, f.call("ipaddr")
}

func (f *fakeQuerier) LinkStatus(string) (bool, error) {
	return f.link, f.call("link")
}

func (f *fakeQuerier) Settings(string) (*ethtool.Settings, error) {
	return f.settings, f.call("settings")
}

func (f *fakeQuerier) DrvInfo(string) (*ethtool.DrvInfo, error) {
	return f.drvinfo, f.call("drvinfo")
}

func testQuerier() *fakeQuerier {
	return &fakeQuerier{
		flags: ethtool.IFFUp | ethtool.IFFBroadcast | ethtool.IFFRunning | ethtool.IFFMulticast,
		mtu:   9000,
		mac:   net.HardwareAddr{0x0c, 0x42, 0xa1, 0x3b, 0x5e, 0x10},
		ip:    net.IPv4(10, 0, 0, 1).To4(),
		link:  true,
		settings: &ethtool.Settings{
			Speed:   100000,
			Duplex:  ethtool.DuplexFull,
			Port:    ethtool.PortDA,
			Autoneg: 1,
		},
		drvinfo: &ethtool.DrvInfo{
			Driver:    "mlx5_core",
			Version:   "6.4.3",
			FwVersion: "22.36.1010 (MT_0000000359)",
			BusInfo:   "0000:01:00.0",
			NStats:    42,
		},
	}
}

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestSpeedString(t *testing.T) {
	require.Equal(t, "100000Mb/s", speedString(100000))
	require.Equal(t, "1000Mb/s", speedString(1000))
	require.Equal(t, "Unknown!", speedString(0))
	require.Equal(t, "Unknown!", speedString(0xffff))
	require.Equal(t, "Unknown!", speedString(ethtool.SpeedUnknown))
}

func TestDuplexString(t *testing.T) {
	require.Equal(t, "Half", duplexString(ethtool.DuplexHalf))
	require.Equal(t, "Full", duplexString(ethtool.DuplexFull))
	require.Equal(t, "Unknown!", duplexString(ethtool.DuplexUnknown))
	require.Equal(t, "Unknown! (7)", duplexString(7))
}

func TestPortString(t *testing.T) {
	require.Equal(t, "Twisted Pair", portString(ethtool.PortTP))
	require.Equal(t, "FIBRE", portString(ethtool.PortFIBRE))
	require.Equal(t, "Direct Attach Copper", portString(ethtool.PortDA))
	require.Equal(t, "Unknown! (9)", portString(9))
}

func TestIfaceArg(t *testing.T) {
	iface, err := ifaceArg(nil)
	require.NoError(t, err)
	require.Equal(t, "eth0", iface)

	iface, err = ifaceArg([]string{"enp1s0"})
	require.NoError(t, err)
	require.Equal(t, "enp1s0", iface)

	_, err = ifaceArg([]string{"eth0", "eth1"})
	require.Error(t, err)
}

func TestPrintBlock(t *testing.T) {
	q := testQuerier()
	var b bytes.Buffer
	require.NoError(t, printBlock(&b, "eth0", "settings", q.settings))
	want := `eth0:
	Speed: 100000Mb/s
	Duplex: Full
	Port: Direct Attach Copper
	PHYAD: 0
	Transceiver: 0
	Auto-negotiation: on
	Supported: 0x0
	Advertising: 0x0
	Link partner advertising: 0x0
`
	require.Equal(t, want, b.String())

	b.Reset()
	require.NoError(t, printBlock(&b, "eth0", "link", false))
	require.Equal(t, "eth0:\n\tLink detected: no\n", b.String())
}

func TestPrintBlockDetail(t *testing.T) {
	q := testQuerier()
	d := &ethtool.Detail{Name: "eth0", Settings: q.settings, DrvInfo: q.drvinfo, Link: true}
	var b bytes.Buffer
	require.NoError(t, printBlock(&b, d.Name, "detail", d))
	out := b.String()
	require.Contains(t, out, "eth0:\n\tSpeed: 100000Mb/s\n")
	require.Contains(t, out, "\tDriver: mlx5_core\n")
	require.Contains(t, out, "\tFirmware version: 22.36.1010 (MT_0000000359)\n")
	require.Contains(t, out, "\tBus info: 0000:01:00.0\n")
	require.Contains(t, out, "\tStatistics: 42\n")
	require.Contains(t, out, "\tLink detected: yes\n")
}

func TestPrintBlockLinkSettings(t *testing.T) {
	l := &ethtool.LinkSettings{LinkModeMasksNwords: -3}
	var b bytes.Buffer
	require.NoError(t, printBlock(&b, "eth0", "linksettings", l))
	require.Contains(t, b.String(), "\tSpeed: Unknown!\n")
	require.Contains(t, b.String(), "\tLink mode mask words: 3 (-3)\n")
}

func TestLsRow(t *testing.T) {
	q := testQuerier()
	row := lsRow(q, "eth0")
	require.Equal(t, []string{
		"eth0",
		"UP|BROADCAST|RUNNING|MULTICAST",
		"9000",
		"0c:42:a1:3b:5e:10",
		"10.0.0.1",
		"yes",
		"100000Mb/s",
		"mlx5_core",
	}, row)
	require.Len(t, row, len(lsHeader))
}

func TestRenderTable(t *testing.T) {
	rows := [][]string{
		lsRow(testQuerier(), "eth0"),
		lsRow(&fakeQuerier{err: syscall.EOPNOTSUPP}, "veth0"),
	}
	var b bytes.Buffer
	require.NoError(t, renderTable(&b, rows))
	out := b.String()
	for _, cell := range []string{"eth0", "9000", "0c:42:a1:3b:5e:10", "10.0.0.1", "100000Mb/s", "mlx5_core"} {
		require.Contains(t, out, cell)
	}
	require.Contains(t, out, "veth0")
	// header, two rows and borders
	require.GreaterOrEqual(t, strings.Count(out, "\n"), 3)
}

func TestLsRowErrors(t *testing.T) {
	q := &fakeQuerier{err: syscall.EOPNOTSUPP}
	row := lsRow(q, "veth0")
	require.Equal(t, []string{"veth0", "-", "-", "-", "-", "-", "-", "-"}, row)
	// every column is queried despite failures
	require.Equal(t, []string{"flags", "mtu", "hwaddr", "ipaddr", "link", "settings", "drvinfo"}, q.calls)
}

func TestCheck(t *testing.T) {
	cases := []struct {
		expr string
		want bool
	}{
		{expr: "link", want: true},
		{expr: "link && speed >= 25000", want: true},
		{expr: "speed > 100000", want: false},
		{expr: "duplex == 'full' && autoneg", want: true},
		{expr: "mtu == 9000 && up && running", want: true},
		{expr: "mtu < 1500 || !link", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := runCheck(testQuerier(), "eth0", tc.expr)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCheckQueriesOnlyNeeded(t *testing.T) {
	q := testQuerier()
	_, err := runCheck(q, "eth0", "mtu > 1500")
	require.NoError(t, err)
	require.Equal(t, []string{"mtu"}, q.calls)

	q = testQuerier()
	_, err = runCheck(q, "eth0", "speed > 0 && duplex == 'full' && autoneg")
	require.NoError(t, err)
	require.Equal(t, []string{"settings"}, q.calls)
}

func TestCheckUnknownSpeed(t *testing.T) {
	q := testQuerier()
	q.settings.Speed = ethtool.SpeedUnknown
	q.settings.Duplex = ethtool.DuplexUnknown
	ok, err := runCheck(q, "eth0", "speed == 0 && duplex == 'unknown'")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckStatusNoColor(t *testing.T) {
	defer func(v bool) { color.NoColor = v }(color.NoColor)

	color.NoColor = false
	require.Contains(t, checkStatus(true), "\x1b[")

	rootNoColorFlag = true
	defer func() { rootNoColorFlag = false }()
	ConfigureVerbosity()
	require.Equal(t, "[ OK ]", checkStatus(true))
	require.Equal(t, "[FAIL]", checkStatus(false))
}

func TestCheckErrors(t *testing.T) {
	_, err := runCheck(testQuerier(), "eth0", "temperature > 50")
	require.EqualError(t, err, `unsupported variable "temperature"`)

	_, err = runCheck(testQuerier(), "eth0", "link &&")
	require.Error(t, err)

	_, err = runCheck(testQuerier(), "eth0", "mtu + 1")
	require.EqualError(t, err, fmt.Sprintf("expression must evaluate to boolean, got %v", float64(9001)))

	q := testQuerier()
	q.err = syscall.ENODEV
	_, err = runCheck(q, "eth0", "link")
	require.ErrorIs(t, err, syscall.ENODEV)
	require.EqualError(t, err, "eth0: getting link status: no such device")
}
