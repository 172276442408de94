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
	"fmt"
	"regexp"

	version "github.com/hashicorp/go-version"
)

// minLinkSettingsKernel is the first kernel release with ETHTOOL_GLINKSETTINGS
var minLinkSettingsKernel = version.Must(version.NewVersion("4.6"))

// kernel releases carry arbitrary suffixes, 5.15.0-91-generic, 4.19.0+, 6.1.0-rc1
var kernelReleaseRe = regexp.MustCompile(`^(\d+)\.(\d+)(\.(\d+))?`)

// ParseKernelRelease extracts version from a kernel release string as reported by uname -r
func ParseKernelRelease(release string) (*version.Version, error) {
	m := kernelReleaseRe.FindString(release)
	if m == "" {
		return nil, fmt.Errorf("unrecognized kernel release %q", release)
	}
	return version.NewVersion(m)
}

// SupportsLinkSettings reports whether kernel v implements ETHTOOL_GLINKSETTINGS
func SupportsLinkSettings(v *version.Version) bool {
	return !v.LessThan(minLinkSettingsKernel)
}
