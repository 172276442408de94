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

// Package exporter periodically queries network interfaces and exposes their link state as Prometheus metrics.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/coreos/go-systemd/daemon"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight scrapes may take once we are asked to stop
const shutdownTimeout = 5 * time.Second

// Exporter holds the exporter details
type Exporter struct {
	cfg       *Config
	registry  *prometheus.Registry
	collector *Collector
}

// NewExporter creates a new instance of Exporter
func NewExporter(cfg *Config, newClient ClientFactory) *Exporter {
	registry := prometheus.NewRegistry()
	return &Exporter{
		cfg:       cfg,
		registry:  registry,
		collector: NewCollector(cfg, newClient, registry),
	}
}

// Handler serves metrics from the exporter registry
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(
		e.registry,
		promhttp.HandlerOpts{
			// Opt into OpenMetrics to support exemplars.
			EnableOpenMetrics: true,
		},
	)
}

// Run serves /metrics and refreshes interface data every interval until ctx is cancelled
func (e *Exporter) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", e.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", e.cfg.ListenAddress, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	eg.Go(func() error {
		return e.loop(ctx)
	})

	log.Infof("serving metrics on %s", ln.Addr())
	if sent, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.Warningf("failed to notify systemd: %v", err)
	} else if sent {
		log.Debug("notified systemd we are ready")
	}

	if err := eg.Wait(); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (e *Exporter) loop(ctx context.Context) error {
	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()
	for {
		if _, err := e.collector.Collect(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Errorf("collecting interface data: %v", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
