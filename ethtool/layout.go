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

package ethtool

import (
	"bytes"
	"encoding/binary"
	"net"

	"github.com/facebook/ethtool/hostendian"
)

// ethtoolCmd is struct ethtool_cmd as per Linux kernel's include/uapi/linux/ethtool.h
type ethtoolCmd struct {
	Cmd           uint32
	Supported     uint32
	Advertising   uint32
	Speed         uint16 // low bits of the speed
	Duplex        uint8
	Port          uint8
	PhyAddress    uint8
	Transceiver   uint8
	Autoneg       uint8
	MdioSupport   uint8
	Maxtxpkt      uint32
	Maxrxpkt      uint32
	SpeedHi       uint16 // high bits of the speed
	EthTpMdix     uint8
	EthTpMdixCtrl uint8
	LpAdvertising uint32
	Reserved      [8]byte
}

// ethtoolDrvinfo is struct ethtool_drvinfo
type ethtoolDrvinfo struct {
	Cmd         uint32
	Driver      [32]byte
	Version     [32]byte
	FwVersion   [32]byte
	BusInfo     [32]byte
	EromVersion [32]byte
	Reserved2   [12]byte
	NPrivFlags  uint32
	NStats      uint32
	TestinfoLen uint32
	EedumpLen   uint32
	RegdumpLen  uint32
}

// ethtoolValue is struct ethtool_value, used by ETHTOOL_GLINK among others
type ethtoolValue struct {
	Cmd  uint32
	Data uint32
}

// ethtoolLinkSettings is struct ethtool_link_settings followed by room for link mode masks.
// The masks are left undecoded.
type ethtoolLinkSettings struct {
	Cmd                 uint32
	Speed               uint32
	Duplex              uint8
	Port                uint8
	PhyAddress          uint8
	Autoneg             uint8
	MdioSupport         uint8
	EthTpMdix           uint8
	EthTpMdixCtrl       uint8
	LinkModeMasksNwords int8
	Transceiver         uint8
	Reserved1           [3]uint8
	Reserved            [7]uint32
	LinkModeMasks       [64]byte
}

// sizes of the layouts on the wire
var (
	sizeofEthtoolCmd          = binary.Size(ethtoolCmd{})
	sizeofEthtoolDrvinfo      = binary.Size(ethtoolDrvinfo{})
	sizeofEthtoolValue        = binary.Size(ethtoolValue{})
	sizeofEthtoolLinkSettings = binary.Size(ethtoolLinkSettings{})
)

// marshal encodes a fixed layout in host byte order
func marshal(v any) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, binary.Size(v)))
	// writes into bytes.Buffer of fixed-size data never fail
	_ = binary.Write(buf, hostendian.Order, v)
	return buf.Bytes()
}

// unmarshal decodes a fixed layout from the beginning of b
func unmarshal(b []byte, v any) error {
	if len(b) < binary.Size(v) {
		return ErrShortBuffer
	}
	return binary.Read(bytes.NewReader(b), hostendian.Order, v)
}

// newCommand returns a zeroed buffer of size bytes carrying only the ethtool sub-command
func newCommand(cmd uint32, size int) []byte {
	if size < 4 {
		size = 4
	}
	b := make([]byte, size)
	hostendian.PutUint32(b, cmd)
	return b
}

// packIfreq builds an ifreq with the name truncated to IFNAMSIZ bytes and payload placed in the union
func packIfreq(name string, payload []byte) []byte {
	b := make([]byte, ifreqSize)
	copy(b[:IFNAMSIZ], name)
	copy(b[ifruOffset:], payload)
	return b
}

// ifreqName returns the NUL trimmed interface name of an ifreq
func ifreqName(b []byte) string {
	return trimNUL(b[:IFNAMSIZ])
}

func unpackFlags(b []byte) (IFF, error) {
	if len(b) < ifruOffset+2 {
		return 0, ErrShortBuffer
	}
	return IFF(hostendian.Order.Uint16(b[ifruOffset:])), nil
}

func unpackMTU(b []byte) (int, error) {
	if len(b) < ifruOffset+4 {
		return 0, ErrShortBuffer
	}
	return int(int32(hostendian.Order.Uint32(b[ifruOffset:]))), nil
}

func unpackHardwareAddr(b []byte) (net.HardwareAddr, error) {
	if len(b) < hwAddrOffset+hwAddrLen {
		return nil, ErrShortBuffer
	}
	mac := make(net.HardwareAddr, hwAddrLen)
	copy(mac, b[hwAddrOffset:hwAddrOffset+hwAddrLen])
	return mac, nil
}

func unpackIPAddr(b []byte) (net.IP, error) {
	if len(b) < ipAddrOffset+ipAddrLen {
		return nil, ErrShortBuffer
	}
	ip := make(net.IP, ipAddrLen)
	copy(ip, b[ipAddrOffset:ipAddrOffset+ipAddrLen])
	return ip, nil
}

// trimNUL returns the C string in b, kernel may leave stale bytes after the terminating NUL
func trimNUL(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Settings is the decoded result of ETHTOOL_GSET
type Settings struct {
	Supported     uint32
	Advertising   uint32
	Speed         uint32 // Mb/s, high and low halves merged
	Duplex        uint8
	Port          uint8
	PhyAddress    uint8
	Transceiver   uint8
	Autoneg       uint8
	MdioSupport   uint8
	Maxtxpkt      uint32
	Maxrxpkt      uint32
	EthTpMdix     uint8
	EthTpMdixCtrl uint8
	LpAdvertising uint32
}

// settings merges the split speed field, speeds above 65535 Mb/s live partly in SpeedHi
func (c *ethtoolCmd) settings() *Settings {
	return &Settings{
		Supported:     c.Supported,
		Advertising:   c.Advertising,
		Speed:         uint32(c.Speed) | uint32(c.SpeedHi)<<16,
		Duplex:        c.Duplex,
		Port:          c.Port,
		PhyAddress:    c.PhyAddress,
		Transceiver:   c.Transceiver,
		Autoneg:       c.Autoneg,
		MdioSupport:   c.MdioSupport,
		Maxtxpkt:      c.Maxtxpkt,
		Maxrxpkt:      c.Maxrxpkt,
		EthTpMdix:     c.EthTpMdix,
		EthTpMdixCtrl: c.EthTpMdixCtrl,
		LpAdvertising: c.LpAdvertising,
	}
}

// DrvInfo is the decoded result of ETHTOOL_GDRVINFO
type DrvInfo struct {
	Driver      string
	Version     string
	FwVersion   string
	BusInfo     string
	EromVersion string
	NPrivFlags  uint32
	NStats      uint32
	TestinfoLen uint32
	EedumpLen   uint32
	RegdumpLen  uint32
}

func (d *ethtoolDrvinfo) drvInfo() *DrvInfo {
	return &DrvInfo{
		Driver:      trimNUL(d.Driver[:]),
		Version:     trimNUL(d.Version[:]),
		FwVersion:   trimNUL(d.FwVersion[:]),
		BusInfo:     trimNUL(d.BusInfo[:]),
		EromVersion: trimNUL(d.EromVersion[:]),
		NPrivFlags:  d.NPrivFlags,
		NStats:      d.NStats,
		TestinfoLen: d.TestinfoLen,
		EedumpLen:   d.EedumpLen,
		RegdumpLen:  d.RegdumpLen,
	}
}

// LinkSettings is the decoded header of ETHTOOL_GLINKSETTINGS.
//
// The request is sent with zero mask words, which the kernel answers with a
// handshake: LinkModeMasksNwords comes back negated and the rest of the
// header is zero. Link mode bitmaps are not decoded.
type LinkSettings struct {
	Speed               uint32
	Duplex              uint8
	Port                uint8
	PhyAddress          uint8
	Autoneg             uint8
	MdioSupport         uint8
	EthTpMdix           uint8
	EthTpMdixCtrl       uint8
	LinkModeMasksNwords int8
	Transceiver         uint8
}

// MaskWords returns the number of 32-bit words in each link mode bitmap the kernel expects
func (l *LinkSettings) MaskWords() int {
	if l.LinkModeMasksNwords < 0 {
		return -int(l.LinkModeMasksNwords)
	}
	return int(l.LinkModeMasksNwords)
}

func (l *ethtoolLinkSettings) linkSettings() *LinkSettings {
	return &LinkSettings{
		Speed:               l.Speed,
		Duplex:              l.Duplex,
		Port:                l.Port,
		PhyAddress:          l.PhyAddress,
		Autoneg:             l.Autoneg,
		MdioSupport:         l.MdioSupport,
		EthTpMdix:           l.EthTpMdix,
		EthTpMdixCtrl:       l.EthTpMdixCtrl,
		LinkModeMasksNwords: l.LinkModeMasksNwords,
		Transceiver:         l.Transceiver,
	}
}
