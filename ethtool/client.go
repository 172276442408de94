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

/*
Package ethtool queries Linux network interfaces through the ioctl interface of
the network stack: SIOCETHTOOL sub-commands for link settings, driver info and
link status, plus SIOCGIF* requests for flags, MTU, MAC and IPv4 address.

Every query is a single blocking ioctl on a datagram socket owned by a Client.
OS errors are returned as is, so callers can match them with errors.Is.
*/
package ethtool

import (
	"encoding/binary"
	"net"
	"runtime"
	"unsafe"

	version "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"

	"github.com/facebook/ethtool/hostendian"
)

//go:generate mockgen -source=client.go -destination=ioctler_mock_test.go -package=ethtool

// Ioctler issues ioctl requests on an open network socket.
// arg points to an ifreq which the kernel reads and fills in place.
type Ioctler interface {
	Ioctl(req uint, arg unsafe.Pointer) error
	Close() error
}

// ifreqData is an ifreq which carries pointer data in its union.
// A type separate from the packed byte form is required in order to comply with the
// unsafe.Pointer rules, the "pointer-ness" of data would not be preserved in a byte array.
type ifreqData struct {
	name [IFNAMSIZ]byte
	data unsafe.Pointer
	// Pad to the same size as ifreq.
	_ [ifreqSize - IFNAMSIZ - unsafe.Sizeof(uintptr(0))]byte
}

// Client queries network interfaces through a single socket handle.
// It is not safe for concurrent use, concurrent callers need a Client each.
type Client struct {
	handle Ioctler
	kernel *version.Version
}

// NewWithIoctler returns a Client issuing requests through h. The Client owns h from now on.
func NewWithIoctler(h Ioctler) *Client {
	return &Client{handle: h}
}

// Close releases the socket handle
func (c *Client) Close() error {
	return c.handle.Close()
}

func (c *Client) ifreq(name string, req uint, payload []byte) ([]byte, error) {
	b := packIfreq(name, payload)
	log.Debugf("ioctl %#x on %q", req, ifreqName(b))
	if err := c.handle.Ioctl(req, unsafe.Pointer(&b[0])); err != nil {
		return nil, err
	}
	return b, nil
}

// Flags returns interface flags (SIOCGIFFLAGS)
func (c *Client) Flags(name string) (IFF, error) {
	b, err := c.ifreq(name, SIOCGIFFLAGS, make([]byte, 2))
	if err != nil {
		return 0, err
	}
	return unpackFlags(b)
}

// MTU returns interface MTU (SIOCGIFMTU)
func (c *Client) MTU(name string) (int, error) {
	b, err := c.ifreq(name, SIOCGIFMTU, make([]byte, 4))
	if err != nil {
		return 0, err
	}
	return unpackMTU(b)
}

// HardwareAddr returns interface MAC address (SIOCGIFHWADDR).
// Use String() to get the xx:xx:xx:xx:xx:xx form.
func (c *Client) HardwareAddr(name string) (net.HardwareAddr, error) {
	b, err := c.ifreq(name, SIOCGIFHWADDR, nil)
	if err != nil {
		return nil, err
	}
	return unpackHardwareAddr(b)
}

// IPAddr returns primary IPv4 address of the interface (SIOCGIFADDR).
// Use String() to get the dotted-decimal form.
func (c *Client) IPAddr(name string) (net.IP, error) {
	b, err := c.ifreq(name, SIOCGIFADDR, nil)
	if err != nil {
		return nil, err
	}
	return unpackIPAddr(b)
}

// Execute sends ethtool command buffer cmd for the interface via SIOCETHTOOL and returns it,
// filled in by the kernel. cmd must start with the sub-command number and be sized for its reply.
func (c *Client) Execute(name string, cmd []byte) ([]byte, error) {
	if len(cmd) < 4 {
		return nil, ErrShortBuffer
	}
	// kernel writes through the pointer, buffer must stay put until ioctl returns
	var pinner runtime.Pinner
	pinner.Pin(&cmd[0])
	defer pinner.Unpin()

	ifr := ifreqData{data: unsafe.Pointer(&cmd[0])}
	copy(ifr.name[:], name)
	log.Debugf("ioctl SIOCETHTOOL cmd %#x on %q", hostendian.Order.Uint32(cmd), name)
	if err := c.handle.Ioctl(SIOCETHTOOL, unsafe.Pointer(&ifr)); err != nil {
		return nil, err
	}
	return cmd, nil
}

// fetch runs command-only ethtool request cmd and decodes reply into v
func (c *Client) fetch(name string, cmd uint32, v any) error {
	b, err := c.Execute(name, newCommand(cmd, binary.Size(v)))
	if err != nil {
		return err
	}
	return unmarshal(b, v)
}

// Settings returns link settings via deprecated ETHTOOL_GSET
func (c *Client) Settings(name string) (*Settings, error) {
	raw := &ethtoolCmd{}
	if err := c.fetch(name, CmdGetSettings, raw); err != nil {
		return nil, err
	}
	return raw.settings(), nil
}

// LinkSettings returns ETHTOOL_GLINKSETTINGS header, see LinkSettings type for what gets decoded
func (c *Client) LinkSettings(name string) (*LinkSettings, error) {
	if c.kernel != nil && !SupportsLinkSettings(c.kernel) {
		return nil, ErrLinkSettingsUnsupported
	}
	raw := &ethtoolLinkSettings{}
	if err := c.fetch(name, CmdGetLinkSettings, raw); err != nil {
		return nil, err
	}
	ls := raw.linkSettings()
	log.Debugf("%s: link_mode_masks_nwords %d", name, ls.LinkModeMasksNwords)
	return ls, nil
}

// DrvInfo returns driver information via ETHTOOL_GDRVINFO
func (c *Client) DrvInfo(name string) (*DrvInfo, error) {
	raw := &ethtoolDrvinfo{}
	if err := c.fetch(name, CmdGetDrvInfo, raw); err != nil {
		return nil, err
	}
	return raw.drvInfo(), nil
}

// LinkStatus reports whether link is detected via ETHTOOL_GLINK
func (c *Client) LinkStatus(name string) (bool, error) {
	b, err := c.Execute(name, marshal(&ethtoolValue{Cmd: CmdGetLink}))
	if err != nil {
		return false, err
	}
	v := &ethtoolValue{}
	if err := unmarshal(b, v); err != nil {
		return false, err
	}
	return v.Data == 1, nil
}

// Detail combines settings, driver info and link status of an interface
type Detail struct {
	Name     string
	Settings *Settings
	DrvInfo  *DrvInfo
	Link     bool
}

// Detail queries settings, driver info and link status. The first failure aborts it.
func (c *Client) Detail(name string) (*Detail, error) {
	var err error
	d := &Detail{Name: name}
	if d.Settings, err = c.Settings(name); err != nil {
		return nil, err
	}
	if d.DrvInfo, err = c.DrvInfo(name); err != nil {
		return nil, err
	}
	if d.Link, err = c.LinkStatus(name); err != nil {
		return nil, err
	}
	return d, nil
}
