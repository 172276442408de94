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

package exporter

import (
	"fmt"
	"net"

	"github.com/jsimonetti/rtnetlink/rtnl"
	"golang.org/x/exp/slices"
)

// Discover returns names of all non-loopback interfaces known to the kernel, sorted
func Discover() ([]string, error) {
	conn, err := rtnl.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("can't establish netlink connection: %w", err)
	}
	defer conn.Close()

	links, err := conn.Links()
	if err != nil {
		return nil, fmt.Errorf("listing links: %w", err)
	}
	return filterLinks(links), nil
}

func filterLinks(links []*net.Interface) []string {
	names := []string{}
	for _, l := range links {
		if l.Flags&net.FlagLoopback != 0 {
			continue
		}
		names = append(names, l.Name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}
