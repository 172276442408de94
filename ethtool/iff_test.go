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
	"testing"

	"github.com/stretchr/testify/require"
)

var iffTestcases = []struct {
	in  IFF
	out string
}{
	{in: 0, out: "-"},
	{in: IFFUp, out: "UP"},
	{in: IFFLoopback, out: "LOOPBACK"},
	{in: IFFUp | IFFLoopback | IFFRunning, out: "UP|LOOPBACK|RUNNING"},
	{in: 0x1043, out: "UP|BROADCAST|RUNNING|MULTICAST"},
	{in: IFFEcho, out: "ECHO"},
	{in: 1 << 25, out: "-"},
}

func TestIFFString(t *testing.T) {
	for _, tc := range iffTestcases {
		require.Equal(t, tc.out, tc.in.String())
	}
}

func TestIFFHas(t *testing.T) {
	f := IFFUp | IFFRunning
	require.True(t, f.Has(IFFUp))
	require.True(t, f.Has(IFFUp|IFFRunning))
	require.False(t, f.Has(IFFUp|IFFPromisc))
	require.False(t, f.Has(IFFLoopback))
}

func TestIFFBits(t *testing.T) {
	// values from include/uapi/linux/if.h
	require.Equal(t, IFF(0x1), IFFUp)
	require.Equal(t, IFF(0x40), IFFRunning)
	require.Equal(t, IFF(0x100), IFFPromisc)
	require.Equal(t, IFF(0x1000), IFFMulticast)
	require.Equal(t, IFF(0x10000), IFFLowerUp)
	require.Equal(t, IFF(0x40000), IFFEcho)
	require.Len(t, iffNames, 19)
}
