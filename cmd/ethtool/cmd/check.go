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

	"github.com/Knetic/govaluate"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/facebook/ethtool/ethtool"
)

const checkHelp = `Evaluate an expression against the interface state and exit with non-zero code if it's false.
evaluation is done with govaluate, please check https://github.com/Knetic/govaluate/blob/master/MANUAL.md
supported variables:
  speed (link speed in Mb/s, 0 if unknown)
  duplex ('full', 'half' or 'unknown')
  autoneg (whether auto-negotiation is on)
  link (whether link is detected)
  mtu (MTU in bytes)
  up (whether IFF_UP flag is set)
  running (whether IFF_RUNNING flag is set)
example:
  ethtool check eth0 -e "link && speed >= 25000 && duplex == 'full'"`

var checkExprFlag string

func init() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkExprFlag, "expr", "e", "link", "expression to evaluate")
}

var checkCmd = &cobra.Command{
	Use:   "check [eth0]",
	Short: "Check interface state against an expression",
	Long:  checkHelp,
	RunE:  runCheckCmd,
}

// which query provides each supported variable
const (
	checkQuerySettings = "settings"
	checkQueryLink     = "link"
	checkQueryMTU      = "mtu"
	checkQueryFlags    = "flags"
)

var checkVars = map[string]string{
	"speed":   checkQuerySettings,
	"duplex":  checkQuerySettings,
	"autoneg": checkQuerySettings,
	"link":    checkQueryLink,
	"mtu":     checkQueryMTU,
	"up":      checkQueryFlags,
	"running": checkQueryFlags,
}

func prepareCheck(exprStr string) (*govaluate.EvaluableExpression, error) {
	expr, err := govaluate.NewEvaluableExpression(exprStr)
	if err != nil {
		return nil, err
	}
	for _, v := range expr.Vars() {
		if _, ok := checkVars[v]; !ok {
			return nil, fmt.Errorf("unsupported variable %q", v)
		}
	}
	return expr, nil
}

func duplexParam(duplex uint8) string {
	switch duplex {
	case ethtool.DuplexFull:
		return "full"
	case ethtool.DuplexHalf:
		return "half"
	}
	return "unknown"
}

// checkParams runs only the queries needed by the variables of the expression
func checkParams(q ifaceQuerier, iface string, vars []string) (map[string]interface{}, error) {
	needed := map[string]bool{}
	for _, v := range vars {
		needed[checkVars[v]] = true
	}
	params := map[string]interface{}{}
	if needed[checkQuerySettings] {
		s, err := q.Settings(iface)
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		speed := float64(s.Speed)
		if s.Speed == ethtool.SpeedUnknown || s.Speed == 0xffff {
			speed = 0
		}
		params["speed"] = speed
		params["duplex"] = duplexParam(s.Duplex)
		params["autoneg"] = s.Autoneg != 0
	}
	if needed[checkQueryLink] {
		up, err := q.LinkStatus(iface)
		if err != nil {
			return nil, fmt.Errorf("getting link status: %w", err)
		}
		params["link"] = up
	}
	if needed[checkQueryMTU] {
		mtu, err := q.MTU(iface)
		if err != nil {
			return nil, fmt.Errorf("getting mtu: %w", err)
		}
		params["mtu"] = float64(mtu)
	}
	if needed[checkQueryFlags] {
		f, err := q.Flags(iface)
		if err != nil {
			return nil, fmt.Errorf("getting flags: %w", err)
		}
		params["up"] = f.Has(ethtool.IFFUp)
		params["running"] = f.Has(ethtool.IFFRunning)
	}
	return params, nil
}

func evaluateCheck(expr *govaluate.EvaluableExpression, params map[string]interface{}) (bool, error) {
	res, err := expr.Evaluate(params)
	if err != nil {
		return false, err
	}
	ok, isBool := res.(bool)
	if !isBool {
		return false, fmt.Errorf("expression must evaluate to boolean, got %v", res)
	}
	return ok, nil
}

func runCheck(q ifaceQuerier, iface, exprStr string) (bool, error) {
	expr, err := prepareCheck(exprStr)
	if err != nil {
		return false, err
	}
	params, err := checkParams(q, iface, expr.Vars())
	if err != nil {
		return false, fmt.Errorf("%s: %w", iface, err)
	}
	log.Debugf("%s: evaluating %q with %v", iface, exprStr, params)
	return evaluateCheck(expr, params)
}

// checkStatus is colored at call time so --no-color applies
func checkStatus(ok bool) string {
	if ok {
		return color.GreenString("[ OK ]")
	}
	return color.RedString("[FAIL]")
}

func runCheckCmd(_ *cobra.Command, args []string) error {
	ConfigureVerbosity()

	iface, err := ifaceArg(args)
	if err != nil {
		return err
	}
	var ok bool
	err = withClient(func(c *ethtool.Client) error {
		ok, err = runCheck(c, iface, checkExprFlag)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Println(checkStatus(ok), iface, checkExprFlag)
	if !ok {
		os.Exit(2)
	}
	return nil
}
