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

package hostendian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestOrderMatchesMemory(t *testing.T) {
	var i uint32 = 0x01020304
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&i)), 4)
	require.Equal(t, i, Order.Uint32(raw))
}

func TestIsBigEndian(t *testing.T) {
	if IsBigEndian {
		require.Equal(t, binary.BigEndian, Order)
	} else {
		require.Equal(t, binary.LittleEndian, Order)
	}
}

func TestPut(t *testing.T) {
	b := make([]byte, 6)
	PutUint32(b[2:], 0xdeadc0de)
	require.Equal(t, uint32(0xdeadc0de), Order.Uint32(b[2:]))
	require.Equal(t, []byte{0, 0}, b[:2])
}
