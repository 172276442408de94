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

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	log "github.com/sirupsen/logrus"

	"github.com/facebook/ethtool/exporter"
)

func main() {
	var (
		verboseFlag  bool
		configFlag   string
		listenFlag   string
		intervalFlag time.Duration
		countersFlag bool
		pprofFlag    string
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [interface...]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Exports NIC link state as Prometheus metrics. All non-loopback interfaces are exported if none are listed.")
		flag.PrintDefaults()
	}
	flag.BoolVar(&verboseFlag, "verbose", false, "verbose output")
	flag.StringVar(&configFlag, "config", "", "path to the config")
	flag.StringVar(&listenFlag, "listen", exporter.DefaultConfig().ListenAddress, "address prometheus metrics exporter is listening on")
	flag.DurationVar(&intervalFlag, "interval", exporter.DefaultConfig().Interval, "how often to query interfaces")
	flag.BoolVar(&countersFlag, "counters", false, "export traffic counters too")
	flag.StringVar(&pprofFlag, "pprof", "", "Address to have the profiler listen on, disabled if empty.")

	flag.Parse()

	log.SetLevel(log.InfoLevel)
	if verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	// figure out which flags were set explicitly
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	cfg, err := exporter.PrepareConfig(configFlag, flag.Args(), listenFlag, intervalFlag, countersFlag, setFlags)
	if err != nil {
		log.Fatal(err)
	}

	if pprofFlag != "" {
		go func() {
			err := http.ListenAndServe(pprofFlag, nil)
			if err != nil {
				log.Errorf("Failed to start pprof. Err: %v", err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := exporter.NewExporter(cfg, exporter.NewEthtoolClient)
	if err := e.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Info("exporter stopped")
}
