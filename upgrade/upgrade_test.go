// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package upgrade

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"reflect"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/httpexc/httperr"
	"github.com/stacklok/httpexc/logging"
	"github.com/stacklok/httpexc/metrics"
	"github.com/stacklok/httpexc/validation/name"
)

// NotFound shares its name with the taxonomy type but is unrelated to it.
type NotFound struct{}

func (*NotFound) Error() string { return "local not found" }

func TestResolveExceptionType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   reflect.Type
		wantOK bool
	}{
		{"standard library type", "SyntaxError", reflect.TypeFor[*json.SyntaxError](), true},
		{"another standard library type", "PathError", reflect.TypeFor[*fs.PathError](), true},
		{"taxonomy type", "Redirect", RedirectType, true},
		{"taxonomy base", "HTTPException", HTTPExceptionType, true},
		{"standard library function", "Errorf", nil, false},
		{"standard library value", "EOF", nil, false},
		{"taxonomy function", "WithCode", nil, false},
		{"taxonomy interface", "Exception", nil, false},
		{"taxonomy non-error type", "Capability", nil, false},
		{"taxonomy constant", "UnknownReason", nil, false},
		{"standard library shadows taxonomy", "New", nil, false},
		{"unknown", "Nonesuch", nil, false},
		{"empty", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ResolveExceptionType(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_BuiltinsTakePrecedence(t *testing.T) {
	t.Parallel()

	local := Namespace{"SyntaxError": RedirectType}
	r := NewResolver(Builtins(), local)

	got, ok := r.Resolve("SyntaxError")
	require.True(t, ok)
	require.Equal(t, reflect.TypeFor[*json.SyntaxError](), got)
}

func TestResolver_CustomNamespace(t *testing.T) {
	t.Parallel()

	host := Namespace{"LocalNotFound": reflect.TypeFor[*NotFound]()}
	r := NewResolver(Builtins(), Taxonomy(), host)

	got, ok := r.Resolve("LocalNotFound")
	require.True(t, ok)
	require.Equal(t, reflect.TypeFor[*NotFound](), got)

	got, ok = r.Resolve("NotFound")
	require.True(t, ok)
	require.Equal(t, NotFoundType, got)
}

func TestNamespace_Bind(t *testing.T) {
	t.Parallel()

	ns := Namespace{}
	require.NoError(t, ns.Bind("Gone", NotFoundType))
	require.NoError(t, ns.Bind("Gone", RedirectType))

	got, ok := NewResolver(ns).Resolve("Gone")
	require.True(t, ok)
	assert.Equal(t, RedirectType, got)

	err := ns.Bind("not found", NotFoundType)
	require.ErrorIs(t, err, name.ErrInvalidIdentifier)
	assert.NotContains(t, ns, "not found")
	assert.Error(t, ns.Bind("", NotFoundType))
}

func TestNamespaceCopies(t *testing.T) {
	t.Parallel()

	ns := Taxonomy()
	delete(ns, "Redirect")

	_, ok := ResolveExceptionType("Redirect")
	require.True(t, ok)
}

func TestUpgradeException(t *testing.T) {
	t.Parallel()

	t.Run("non-string passes through", func(t *testing.T) {
		t.Parallel()

		typ, v := UpgradeException(TypeOf[*json.SyntaxError](), "TEST")
		require.Equal(t, reflect.TypeFor[*json.SyntaxError](), typ)
		require.Equal(t, "TEST", v)
	})

	t.Run("string in standard library", func(t *testing.T) {
		t.Parallel()

		typ, v := UpgradeException(Named("SyntaxError"), "TEST")
		require.Equal(t, reflect.TypeFor[*json.SyntaxError](), typ)
		require.Equal(t, "TEST", v)
	})

	t.Run("string in taxonomy", func(t *testing.T) {
		t.Parallel()

		typ, v := UpgradeException(Named("Redirect"), "http://example.com/")
		require.Equal(t, RedirectType, typ)
		require.Equal(t, "http://example.com/", v)
	})

	t.Run("string miss returns InternalError", func(t *testing.T) {
		t.Parallel()

		typ, v := UpgradeException(Named("Nonesuch"), "TEST")
		require.Equal(t, InternalErrorType, typ)
		require.Equal(t, Legacy{Name: "Nonesuch", Value: "TEST"}, v)
	})

	t.Run("non-string match by name is left alone", func(t *testing.T) {
		t.Parallel()

		typ, v := UpgradeException(TypeOf[*NotFound](), "TEST")
		require.Equal(t, reflect.TypeFor[*NotFound](), typ)
		require.NotEqual(t, NotFoundType, typ)
		require.Equal(t, "TEST", v)
	})

	t.Run("identifier of a caught error", func(t *testing.T) {
		t.Parallel()

		typ, _ := UpgradeException(Of(httperr.NewForbidden("x")), nil)
		require.Equal(t, ForbiddenType, typ)
	})
}

func TestUpgrader_DeprecationNotice(t *testing.T) {
	t.Parallel()

	t.Run("legacy names are logged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		u := NewUpgrader(WithLogger(logging.New(logging.WithOutput(&buf))))

		u.Upgrade(Named("Redirect"), "http://example.com/")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "Redirect", entry["exception"])
		assert.Contains(t, entry["msg"], "deprecated")
	})

	t.Run("types are not logged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		u := NewUpgrader(WithLogger(logging.New(logging.WithOutput(&buf))))

		u.Upgrade(TypeOf[*httperr.NotFound](), "x")
		assert.Empty(t, buf.String())
	})

	t.Run("notices can be disabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		u := NewUpgrader(
			WithLogger(logging.New(logging.WithOutput(&buf))),
			WithDeprecationWarnings(false),
		)

		typ, _ := u.Upgrade(Named("NotFound"), "x")
		assert.Equal(t, NotFoundType, typ)
		assert.Empty(t, buf.String())
	})

	t.Run("level filtering applies", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := logging.New(logging.WithOutput(&buf), logging.WithLevel(slog.LevelError))
		NewUpgrader(WithLogger(logger)).Upgrade(Named("NotFound"), "x")
		assert.Empty(t, buf.String())
	})
}

func TestUpgrader_Metrics(t *testing.T) {
	t.Parallel()

	reg := prom.NewRegistry()
	c := metrics.NewCollector(reg)
	u := NewUpgrader(WithMetrics(c), WithDeprecationWarnings(false))

	u.Upgrade(TypeOf[*httperr.NotFound](), nil)
	u.Upgrade(Named("Redirect"), nil)
	u.Upgrade(Named("Nonesuch"), nil)
	u.Upgrade(Named("Nonesuch"), nil)

	count := func(outcome metrics.UpgradeOutcome) float64 {
		mfs, err := reg.Gather()
		require.NoError(t, err)
		for _, mf := range mfs {
			if mf.GetName() != "httpexc_upgrades_total" {
				continue
			}
			for _, m := range mf.GetMetric() {
				if m.GetLabel()[0].GetValue() == string(outcome) {
					return m.GetCounter().GetValue()
				}
			}
		}
		return 0
	}

	assert.InDelta(t, 1, count(metrics.OutcomePassthrough), 0)
	assert.InDelta(t, 1, count(metrics.OutcomeResolved), 0)
	assert.InDelta(t, 2, count(metrics.OutcomeFallback), 0)

	series, err := testutil.GatherAndCount(reg, "httpexc_upgrades_total")
	require.NoError(t, err)
	assert.Equal(t, 3, series)
}

func TestRaise(t *testing.T) {
	t.Parallel()

	t.Run("taxonomy type", func(t *testing.T) {
		t.Parallel()

		err := Raise(NotFoundType, "/missing")
		var nf *httperr.NotFound
		require.ErrorAs(t, err, &nf)
		require.Equal(t, http.StatusNotFound, nf.GetStatus())
		require.Equal(t, "/missing", nf.Value())
		require.Equal(t, "/missing", nf.Error())
	})

	t.Run("redirect sets location", func(t *testing.T) {
		t.Parallel()

		err := Raise(UpgradeException(Named("Redirect"), "http://example.com/"))
		var r *httperr.Redirect
		require.ErrorAs(t, err, &r)
		require.Equal(t, "http://example.com/", r.Location())
		require.Equal(t, []httperr.Header{{Name: "Location", Value: "http://example.com/"}}, r.Headers())
	})

	t.Run("fallback keeps the legacy pair", func(t *testing.T) {
		t.Parallel()

		err := Raise(UpgradeException(Named("Nonesuch"), "TEST"))
		var ie *httperr.InternalError
		require.ErrorAs(t, err, &ie)
		require.Equal(t, Legacy{Name: "Nonesuch", Value: "TEST"}, ie.Value())
		require.Equal(t, "Nonesuch: TEST", ie.Error())
	})

	t.Run("existing error of the type is returned", func(t *testing.T) {
		t.Parallel()

		orig := &NotFound{}
		err := Raise(reflect.TypeFor[*NotFound](), orig)
		require.Same(t, orig, err)
	})

	t.Run("other types become InternalError", func(t *testing.T) {
		t.Parallel()

		err := Raise(reflect.TypeFor[*json.SyntaxError](), "TEST")
		var ie *httperr.InternalError
		require.ErrorAs(t, err, &ie)
		require.Equal(t, Legacy{Name: "*json.SyntaxError", Value: "TEST"}, ie.Value())
	})

	t.Run("nil type", func(t *testing.T) {
		t.Parallel()

		err := Raise(nil, "TEST")
		require.True(t, httperr.HasCapability(err, httperr.CapGenericHTTPError))
	})
}

func TestIdent(t *testing.T) {
	t.Parallel()

	assert.True(t, Named("x").IsLegacy())
	assert.True(t, Ident{}.IsLegacy())
	assert.True(t, Type(nil).IsLegacy())
	assert.True(t, Of(nil).IsLegacy())
	assert.False(t, TypeOf[*httperr.NotFound]().IsLegacy())
	assert.Equal(t, "x", Named("x").String())
	assert.Equal(t, "*httperr.NotFound", TypeOf[*httperr.NotFound]().String())
	assert.Equal(t, "Nonesuch: TEST", Legacy{Name: "Nonesuch", Value: "TEST"}.String())
}
