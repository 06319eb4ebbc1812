// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package policy evaluates CEL rules against taxonomy exceptions.
package policy

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/stacklok/httpexc/httperr"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a rule.
	DefaultMaxExpressionLength = 4096

	// DefaultCostLimit is the default runtime cost limit for rule evaluation.
	DefaultCostLimit = 100000

	// DefaultExposeDetail exposes messages of client-facing exceptions and
	// hides those of server-side faults.
	DefaultExposeDetail = "status < 500"
)

// Engine compiles rules over the exception variables:
//
//	status        int           the exception's status code
//	reason        string        the stored reason phrase
//	name          string        the exception type name, e.g. "NotFound"
//	capabilities  list(string)  capability tag names, e.g. ["HTTPException", "NotFound"]
//
// It is safe for concurrent use from multiple goroutines.
type Engine struct {
	once sync.Once
	env  *cel.Env
	err  error

	maxExpressionLength int
	costLimit           uint64
}

// Predicate is a compiled boolean rule.
type Predicate struct {
	source  string
	program cel.Program
}

// NewEngine creates an engine with default limits.
func NewEngine() *Engine {
	return &Engine{
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
}

// WithMaxExpressionLength sets the maximum allowed length for rules.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxExpressionLength = maxLen
	return e
}

// WithCostLimit sets the runtime cost limit for rule evaluation.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.err = cel.NewEnv(
			cel.Variable("status", cel.IntType),
			cel.Variable("reason", cel.StringType),
			cel.Variable("name", cel.StringType),
			cel.Variable("capabilities", cel.ListType(cel.StringType)),
		)
	})
	return e.env, e.err
}

// check parses and type checks expr and requires a boolean result.
func (e *Engine) check(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > e.maxExpressionLength {
		return nil, nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get CEL environment: %w", err)
	}

	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newParseError(expr, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, nil, newCheckError(expr, issues)
	}

	if !checked.OutputType().IsExactType(cel.BoolType) {
		return nil, nil, fmt.Errorf("%w: expression %q evaluates to %s, want bool",
			ErrExpressionCheck, expr, checked.OutputType())
	}

	return env, checked, nil
}

// Check verifies that expr is a valid boolean rule without building a
// program. Use it to validate configuration.
func (e *Engine) Check(expr string) error {
	_, _, err := e.check(expr)
	return err
}

// Compile compiles expr into a Predicate.
func (e *Engine) Compile(expr string) (*Predicate, error) {
	env, checked, err := e.check(expr)
	if err != nil {
		return nil, err
	}

	program, err := env.Program(checked, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return &Predicate{source: expr, program: program}, nil
}

// Default returns the compiled DefaultExposeDetail rule.
func Default() *Predicate {
	p, err := NewEngine().Compile(DefaultExposeDetail)
	if err != nil {
		panic(fmt.Sprintf("default exposure rule does not compile: %v", err))
	}
	return p
}

// Source returns the rule source.
func (p *Predicate) Source() string {
	return p.source
}

// Allows evaluates the rule against exc.
func (p *Predicate) Allows(exc httperr.Exception) (bool, error) {
	out, _, err := p.program.Eval(Activation(exc))
	if err != nil {
		return false, fmt.Errorf("%w: %s", ErrEvaluation, err)
	}

	allowed, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: expected bool, got %T", ErrInvalidResult, out.Value())
	}
	return allowed, nil
}

// Activation returns the variable bindings for exc.
func Activation(exc httperr.Exception) map[string]any {
	t := reflect.TypeOf(exc)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return map[string]any{
		"status":       int64(exc.GetStatus()),
		"reason":       exc.Reason(),
		"name":         t.Name(),
		"capabilities": exc.Capabilities().Names(),
	}
}
