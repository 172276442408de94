//go:build linux

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
	"unsafe"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// socket is an AF_INET datagram socket used only to carry ioctls to the network stack
type socket struct {
	fd int
}

// Ioctl implements Ioctler
func (s *socket) Ioctl(req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(s.fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Close implements Ioctler
func (s *socket) Close() error {
	return unix.Close(s.fd)
}

// New opens a socket for interface queries. Callers must Close the Client.
func New() (*Client, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, unix.IPPROTO_IP)
	if err != nil {
		return nil, err
	}
	c := NewWithIoctler(&socket{fd: fd})
	if c.kernel, err = KernelVersion(); err != nil {
		log.Warningf("unable to determine kernel version, not gating ETHTOOL_GLINKSETTINGS: %v", err)
	}
	return c, nil
}
