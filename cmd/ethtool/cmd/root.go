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
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/facebook/ethtool/ethtool"
)

// RootCmd is a main entry point. It's exported so ethtool could be easily extended without touching core functionality.
var RootCmd = &cobra.Command{
	Use:   "ethtool",
	Short: "Query network interface settings over ioctl",
}

// flags
var rootVerboseFlag bool
var rootNoColorFlag bool

const defaultIface = "eth0"

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().BoolVar(&rootNoColorFlag, "no-color", false, "disable colored output")
}

// ConfigureVerbosity configures log verbosity and colors based on parsed flags. Needs to be called by any subcommand.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
	if rootNoColorFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}

// Execute is the main entry point for CLI interface
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// ifaceArg returns the interface named on the command line, eth0 if none
func ifaceArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return defaultIface, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("specify only one interface")
	}
}

// withClient runs f with a freshly opened client and closes it afterwards
func withClient(f func(c *ethtool.Client) error) error {
	c, err := ethtool.New()
	if err != nil {
		return err
	}
	defer c.Close()
	return f(c)
}

// dump prints raw decoded values in verbose mode
func dump(v ...interface{}) {
	if rootVerboseFlag {
		spew.Dump(v...)
	}
}
