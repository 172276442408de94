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
Package hostendian provides the byte order of the machine this code is running on.

Kernel ABI structures passed through ioctl (ifreq, ethtool commands) are laid
out in host byte order, so every encoder and decoder of those structures
must agree on it.
*/
package hostendian

import (
	"encoding/binary"

	"github.com/josharian/native"
)

// Order of the bytes
var Order binary.ByteOrder = native.Endian

// IsBigEndian is a flag determining if value is in Big Endian
var IsBigEndian = Order.Uint16([]byte{0x01, 0x00}) == 0x0100

// PutUint32 writes v into b in host byte order
func PutUint32(b []byte, v uint32) { Order.PutUint32(b, v) }
