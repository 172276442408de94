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
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	psnet "github.com/shirou/gopsutil/net"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/facebook/ethtool/ethtool"
)

// Querier is the part of ethtool.Client the collector relies on
type Querier interface {
	Settings(name string) (*ethtool.Settings, error)
	DrvInfo(name string) (*ethtool.DrvInfo, error)
	LinkStatus(name string) (bool, error)
	MTU(name string) (int, error)
	Close() error
}

// ClientFactory opens a new Querier. Every goroutine gets its own.
type ClientFactory func() (Querier, error)

// NewEthtoolClient is a ClientFactory backed by ethtool.New
func NewEthtoolClient() (Querier, error) {
	c, err := ethtool.New()
	if err != nil {
		return nil, err
	}
	return c, nil
}

// query names used in Sample.Errors and metric labels
const (
	queryOpen     = "open"
	queryLink     = "link"
	querySettings = "settings"
	queryDrvInfo  = "drvinfo"
	queryMTU      = "mtu"
)

// Sample is the result of querying one interface. Every query is independent,
// a failed one leaves its field zero and is recorded in Errors.
type Sample struct {
	Iface    string
	Link     bool
	Settings *ethtool.Settings
	DrvInfo  *ethtool.DrvInfo
	MTU      int
	Errors   map[string]error
}

// Collector queries interfaces and updates metrics
type Collector struct {
	cfg       *Config
	newClient ClientFactory
	metrics   *metrics
	known     map[string]bool

	discover func() ([]string, error)
	counters func(pernic bool) ([]psnet.IOCountersStat, error)
}

// NewCollector returns a Collector registering its metrics in reg
func NewCollector(cfg *Config, newClient ClientFactory, reg prometheus.Registerer) *Collector {
	return &Collector{
		cfg:       cfg,
		newClient: newClient,
		metrics:   newMetrics(reg),
		known:     map[string]bool{},
		discover:  Discover,
		counters:  psnet.IOCounters,
	}
}

func (c *Collector) query(iface string) *Sample {
	s := &Sample{Iface: iface, Errors: map[string]error{}}
	q, err := c.newClient()
	if err != nil {
		s.Errors[queryOpen] = err
		return s
	}
	defer q.Close()

	if s.Link, err = q.LinkStatus(iface); err != nil {
		s.Errors[queryLink] = err
	}
	if s.Settings, err = q.Settings(iface); err != nil {
		s.Errors[querySettings] = err
	}
	if s.DrvInfo, err = q.DrvInfo(iface); err != nil {
		s.Errors[queryDrvInfo] = err
	}
	if s.MTU, err = q.MTU(iface); err != nil {
		s.Errors[queryMTU] = err
	}
	return s
}

// Collect queries all configured (or discovered) interfaces concurrently and updates metrics
func (c *Collector) Collect(ctx context.Context) ([]*Sample, error) {
	ifaces := c.cfg.Interfaces
	if len(ifaces) == 0 {
		var err error
		if ifaces, err = c.discover(); err != nil {
			return nil, fmt.Errorf("discovering interfaces: %w", err)
		}
	}

	samples := make([]*Sample, len(ifaces))
	eg, ctx := errgroup.WithContext(ctx)
	for i, iface := range ifaces {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			samples[i] = c.query(iface)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	c.record(samples)
	if c.cfg.Counters {
		if err := c.recordCounters(ifaces); err != nil {
			log.Errorf("collecting traffic counters: %v", err)
		}
	}
	return samples, nil
}

func (c *Collector) record(samples []*Sample) {
	m := c.metrics
	current := map[string]bool{}
	for _, s := range samples {
		current[s.Iface] = true
		for _, q := range sortedKeys(s.Errors) {
			log.Warningf("%s: %s query failed: %v", s.Iface, q, s.Errors[q])
			m.queryErrors.WithLabelValues(s.Iface, q).Inc()
		}
		if s.Errors[queryOpen] != nil {
			c.dropState(s.Iface)
			continue
		}
		// a failed query drops the gauges it feeds, old values would pass for current ones
		if s.Errors[queryLink] == nil {
			m.linkUp.WithLabelValues(s.Iface).Set(boolToFloat(s.Link))
		} else {
			m.linkUp.DeleteLabelValues(s.Iface)
		}
		if st := s.Settings; st != nil {
			// drivers report all ones while link is down
			if st.Speed == ethtool.SpeedUnknown || st.Speed == 0xffff {
				m.speed.DeleteLabelValues(s.Iface)
			} else {
				m.speed.WithLabelValues(s.Iface).Set(float64(st.Speed))
			}
			m.duplexFull.WithLabelValues(s.Iface).Set(boolToFloat(st.Duplex == ethtool.DuplexFull))
			m.autoneg.WithLabelValues(s.Iface).Set(boolToFloat(st.Autoneg != 0))
		} else {
			m.speed.DeleteLabelValues(s.Iface)
			m.duplexFull.DeleteLabelValues(s.Iface)
			m.autoneg.DeleteLabelValues(s.Iface)
		}
		if s.Errors[queryMTU] == nil {
			m.mtu.WithLabelValues(s.Iface).Set(float64(s.MTU))
		} else {
			m.mtu.DeleteLabelValues(s.Iface)
		}
		m.info.DeletePartialMatch(prometheus.Labels{"iface": s.Iface})
		if d := s.DrvInfo; d != nil {
			m.info.WithLabelValues(s.Iface, d.Driver, d.Version, d.FwVersion, d.BusInfo).Set(1)
		}
	}
	for iface := range c.known {
		if !current[iface] {
			log.Infof("%s: interface is gone, dropping its metrics", iface)
			c.forget(iface)
		}
	}
	c.known = current
}

// dropState removes link state gauges of iface, counters are kept
func (c *Collector) dropState(iface string) {
	labels := prometheus.Labels{"iface": iface}
	m := c.metrics
	for _, g := range []*prometheus.GaugeVec{m.linkUp, m.speed, m.duplexFull, m.autoneg, m.mtu, m.info} {
		g.DeletePartialMatch(labels)
	}
}

func (c *Collector) forget(iface string) {
	labels := prometheus.Labels{"iface": iface}
	m := c.metrics
	for _, g := range []*prometheus.GaugeVec{
		m.linkUp, m.speed, m.duplexFull, m.autoneg, m.mtu, m.info,
		m.rxBytes, m.txBytes, m.rxPackets, m.txPackets, m.rxErrors, m.txErrors, m.rxDropped, m.txDropped,
	} {
		g.DeletePartialMatch(labels)
	}
	m.queryErrors.DeletePartialMatch(labels)
}

func (c *Collector) recordCounters(ifaces []string) error {
	stats, err := c.counters(true)
	if err != nil {
		return err
	}
	m := c.metrics
	for _, st := range stats {
		if !slices.Contains(ifaces, st.Name) {
			continue
		}
		m.rxBytes.WithLabelValues(st.Name).Set(float64(st.BytesRecv))
		m.txBytes.WithLabelValues(st.Name).Set(float64(st.BytesSent))
		m.rxPackets.WithLabelValues(st.Name).Set(float64(st.PacketsRecv))
		m.txPackets.WithLabelValues(st.Name).Set(float64(st.PacketsSent))
		m.rxErrors.WithLabelValues(st.Name).Set(float64(st.Errin))
		m.txErrors.WithLabelValues(st.Name).Set(float64(st.Errout))
		m.rxDropped.WithLabelValues(st.Name).Set(float64(st.Dropin))
		m.txDropped.WithLabelValues(st.Name).Set(float64(st.Dropout))
	}
	return nil
}

func sortedKeys(m map[string]error) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
