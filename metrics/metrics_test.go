// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	reg := prom.NewRegistry()
	c := NewCollector(reg)

	c.IncUpgrade(OutcomeResolved)
	c.IncUpgrade(OutcomeResolved)
	c.IncUpgrade(OutcomeFallback)
	c.IncRecoveredPanic(404)

	assert.InDelta(t, 2, testutil.ToFloat64(c.upgrades.WithLabelValues(string(OutcomeResolved))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.upgrades.WithLabelValues(string(OutcomeFallback))), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(c.upgrades.WithLabelValues(string(OutcomePassthrough))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.recovered.WithLabelValues("404")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 2)
}

func TestCollector_Nil(t *testing.T) {
	t.Parallel()

	var c *Collector
	assert.NotPanics(t, func() {
		c.IncUpgrade(OutcomeResolved)
		c.IncRecoveredPanic(500)
	})
}

func TestNewCollector_NilRegistry(t *testing.T) {
	t.Parallel()

	c := NewCollector(nil)
	require.NotNil(t, c)
	c.IncUpgrade(OutcomePassthrough)
	assert.InDelta(t, 1, testutil.ToFloat64(c.upgrades.WithLabelValues(string(OutcomePassthrough))), 0)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	reg := prom.NewRegistry()
	c := NewCollector(reg)
	c.IncRecoveredPanic(500)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `httpexc_recovered_panics_total{status="500"} 1`)
}
