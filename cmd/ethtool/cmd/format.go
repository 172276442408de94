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

	"github.com/fatih/color"

	"github.com/facebook/ethtool/ethtool"
)

// speedString formats speed in Mb/s the way ethtool(8) does
func speedString(speed uint32) string {
	if speed == 0 || speed == uint32(0xffff) || speed == ethtool.SpeedUnknown {
		return "Unknown!"
	}
	return fmt.Sprintf("%dMb/s", speed)
}

func duplexString(duplex uint8) string {
	switch duplex {
	case ethtool.DuplexHalf:
		return "Half"
	case ethtool.DuplexFull:
		return "Full"
	case ethtool.DuplexUnknown:
		return "Unknown!"
	}
	return fmt.Sprintf("Unknown! (%d)", duplex)
}

var portNames = map[uint8]string{
	ethtool.PortTP:    "Twisted Pair",
	ethtool.PortAUI:   "AUI",
	ethtool.PortBNC:   "BNC",
	ethtool.PortMII:   "MII",
	ethtool.PortFIBRE: "FIBRE",
	ethtool.PortDA:    "Direct Attach Copper",
	ethtool.PortNone:  "None",
	ethtool.PortOther: "Other",
}

func portString(port uint8) string {
	if name, ok := portNames[port]; ok {
		return name
	}
	return fmt.Sprintf("Unknown! (%d)", port)
}

func onOff(v uint8) string {
	if v != 0 {
		return "on"
	}
	return "off"
}

// linkString is a colored yes/no, colors are dropped when output is not a terminal
func linkString(up bool) string {
	if up {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}
