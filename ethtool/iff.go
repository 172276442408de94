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
	"strings"
)

// IFF represents interface flags as returned by SIOCGIFFLAGS, see net/if.h
type IFF uint32

// Interface flags in kernel bit order
const (
	IFFUp IFF = 1 << iota
	IFFBroadcast
	IFFDebug
	IFFLoopback
	IFFPointToPoint
	IFFNoTrailers
	IFFRunning
	IFFNoARP
	IFFPromisc
	IFFAllMulti
	IFFMaster
	IFFSlave
	IFFMulticast
	IFFPortSel
	IFFAutoMedia
	IFFDynamic
	IFFLowerUp
	IFFDormant
	IFFEcho
)

var iffNames = []string{
	"UP",
	"BROADCAST",
	"DEBUG",
	"LOOPBACK",
	"POINTOPOINT",
	"NOTRAILERS",
	"RUNNING",
	"NOARP",
	"PROMISC",
	"ALLMULTI",
	"MASTER",
	"SLAVE",
	"MULTICAST",
	"PORTSEL",
	"AUTOMEDIA",
	"DYNAMIC",
	"LOWER_UP",
	"DORMANT",
	"ECHO",
}

// Has reports whether all bits of f are set
func (x IFF) Has(f IFF) bool {
	return x&f == f
}

// Names returns names of the set flags in bit order
func (x IFF) Names() []string {
	names := []string{}
	for i, name := range iffNames {
		if x&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

// String implements fmt.Stringer interface
func (x IFF) String() string {
	names := x.Names()
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}
