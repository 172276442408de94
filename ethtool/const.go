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
	"errors"
)

// ioctl requests as per Linux kernel's include/uapi/linux/sockios.h.
// Defined here rather than taken from x/sys/unix so the layouts build on every platform.
const (
	SIOCGIFFLAGS  = 0x8913
	SIOCSIFFLAGS  = 0x8914
	SIOCGIFADDR   = 0x8915
	SIOCGIFMTU    = 0x8921
	SIOCGIFHWADDR = 0x8927
	SIOCETHTOOL   = 0x8946
)

// ethtool sub-commands as per Linux kernel's include/uapi/linux/ethtool.h
const (
	CmdGetSettings     uint32 = 0x00000001 // ETHTOOL_GSET, deprecated by CmdGetLinkSettings
	CmdGetDrvInfo      uint32 = 0x00000003 // ETHTOOL_GDRVINFO
	CmdGetLink         uint32 = 0x0000000a // ETHTOOL_GLINK
	CmdGetLinkSettings uint32 = 0x0000004c // ETHTOOL_GLINKSETTINGS, since 4.6
	CmdSetLinkSettings uint32 = 0x0000004d // ETHTOOL_SLINKSETTINGS, since 4.6
)

// IFNAMSIZ is the maximum size of an interface name, including the terminating NUL
const IFNAMSIZ = 16

// ifreqSize is sizeof(struct ifreq) on 64-bit targets: name plus a 24 byte union.
// Smaller targets simply ignore the tail.
const ifreqSize = IFNAMSIZ + 24

// offsets inside the ifreq union, see netdevice(7)
const (
	ifruOffset = IFNAMSIZ
	// struct sockaddr: sa_family (2 bytes) then sa_data
	hwAddrOffset = ifruOffset + 2
	hwAddrLen    = 6
	// struct sockaddr_in: sin_family (2), sin_port (2), sin_addr (4)
	ipAddrOffset = ifruOffset + 4
	ipAddrLen    = 4
)

// Duplex values, DUPLEX_* in ethtool.h
const (
	DuplexHalf    uint8 = 0x00
	DuplexFull    uint8 = 0x01
	DuplexUnknown uint8 = 0xff
)

// Port values, PORT_* in ethtool.h
const (
	PortTP    uint8 = 0x00
	PortAUI   uint8 = 0x01
	PortBNC   uint8 = 0x02
	PortMII   uint8 = 0x03
	PortFIBRE uint8 = 0x04
	PortDA    uint8 = 0x05
	PortNone  uint8 = 0xef
	PortOther uint8 = 0xff
)

// SpeedUnknown is reported by drivers when link is down
const SpeedUnknown uint32 = 0xffffffff

var (
	// ErrUnsupportedPlatform is returned when interface queries are attempted outside of Linux
	ErrUnsupportedPlatform = errors.New("ethtool: interface queries are only supported on linux")
	// ErrLinkSettingsUnsupported is returned when the running kernel predates ETHTOOL_GLINKSETTINGS
	ErrLinkSettingsUnsupported = errors.New("ethtool: ETHTOOL_GLINKSETTINGS requires linux 4.6 or newer")
	// ErrShortBuffer is returned when a buffer is smaller than the layout being decoded
	ErrShortBuffer = errors.New("ethtool: buffer too short for layout")
)
