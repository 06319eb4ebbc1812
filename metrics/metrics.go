// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package metrics exposes Prometheus counters for exception upgrades and
// recovered panics.
package metrics

import (
	"strconv"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "httpexc"

// UpgradeOutcome labels how an identifier was normalized.
type UpgradeOutcome string

const (
	// OutcomePassthrough is recorded for identifiers that were already types.
	OutcomePassthrough UpgradeOutcome = "passthrough"
	// OutcomeResolved is recorded when a legacy name resolved to a type.
	OutcomeResolved UpgradeOutcome = "resolved"
	// OutcomeFallback is recorded when a legacy name fell back to InternalError.
	OutcomeFallback UpgradeOutcome = "fallback"
)

// Collector records exception metrics. A nil *Collector is valid and
// records nothing.
type Collector struct {
	upgrades  *prom.CounterVec
	recovered *prom.CounterVec
}

// NewCollector creates the counters and registers them with reg. A nil reg
// gets a private registry.
func NewCollector(reg prom.Registerer) *Collector {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	c := &Collector{
		upgrades: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "upgrades_total",
			Help:      "Exception identifier upgrades by outcome",
		}, []string{"outcome"}),
		recovered: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "recovered_panics_total",
			Help:      "Panics recovered by the HTTP middleware by response status",
		}, []string{"status"}),
	}
	reg.MustRegister(c.upgrades, c.recovered)
	return c
}

// IncUpgrade counts one upgrade.
func (c *Collector) IncUpgrade(outcome UpgradeOutcome) {
	if c == nil {
		return
	}
	c.upgrades.WithLabelValues(string(outcome)).Inc()
}

// IncRecoveredPanic counts one recovered panic rendered with status.
func (c *Collector) IncRecoveredPanic(status int) {
	if c == nil {
		return
	}
	c.recovered.WithLabelValues(strconv.Itoa(status)).Inc()
}
