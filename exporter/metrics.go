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
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ethtool"

// metrics holds all collectors the exporter updates
type metrics struct {
	linkUp      *prometheus.GaugeVec
	speed       *prometheus.GaugeVec
	duplexFull  *prometheus.GaugeVec
	autoneg     *prometheus.GaugeVec
	mtu         *prometheus.GaugeVec
	info        *prometheus.GaugeVec
	queryErrors *prometheus.CounterVec

	rxBytes   *prometheus.GaugeVec
	txBytes   *prometheus.GaugeVec
	rxPackets *prometheus.GaugeVec
	txPackets *prometheus.GaugeVec
	rxErrors  *prometheus.GaugeVec
	txErrors  *prometheus.GaugeVec
	rxDropped *prometheus.GaugeVec
	txDropped *prometheus.GaugeVec
}

func ifaceGauge(name, help string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, []string{"iface"})
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		linkUp:     ifaceGauge("link_up", "Whether link is detected (ETHTOOL_GLINK)"),
		speed:      ifaceGauge("speed_mbps", "Link speed in Mb/s (ETHTOOL_GSET)"),
		duplexFull: ifaceGauge("duplex_full", "Whether link runs in full duplex"),
		autoneg:    ifaceGauge("autoneg", "Whether autonegotiation is enabled"),
		mtu:        ifaceGauge("mtu_bytes", "Interface MTU (SIOCGIFMTU)"),
		info: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "info",
			Help:      "Driver information (ETHTOOL_GDRVINFO), always 1",
		}, []string{"iface", "driver", "version", "firmware", "bus"}),
		queryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_errors_total",
			Help:      "Failed interface queries",
		}, []string{"iface", "query"}),

		rxBytes:   ifaceGauge("rx_bytes", "Bytes received"),
		txBytes:   ifaceGauge("tx_bytes", "Bytes sent"),
		rxPackets: ifaceGauge("rx_packets", "Packets received"),
		txPackets: ifaceGauge("tx_packets", "Packets sent"),
		rxErrors:  ifaceGauge("rx_errors", "Receive errors"),
		txErrors:  ifaceGauge("tx_errors", "Transmit errors"),
		rxDropped: ifaceGauge("rx_dropped", "Received packets dropped"),
		txDropped: ifaceGauge("tx_dropped", "Sent packets dropped"),
	}
	reg.MustRegister(
		m.linkUp, m.speed, m.duplexFull, m.autoneg, m.mtu, m.info, m.queryErrors,
		m.rxBytes, m.txBytes, m.rxPackets, m.txPackets, m.rxErrors, m.txErrors, m.rxDropped, m.txDropped,
	)
	return m
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
