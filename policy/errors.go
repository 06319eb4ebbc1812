// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for rule compilation and evaluation.
var (
	// ErrExpressionCheck is returned when a rule fails syntax or type checking.
	ErrExpressionCheck = errors.New("policy rule check failed")

	// ErrEvaluation is returned when rule evaluation fails.
	ErrEvaluation = errors.New("policy rule evaluation failed")

	// ErrInvalidResult is returned when a rule does not produce a bool.
	ErrInvalidResult = errors.New("policy rule returned invalid result type")
)

// Issue is one problem found in a rule.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// Issues lists the problems found in a rule.
type Issues struct {
	Errors []Issue `json:"errors,omitempty"`
	Source string  `json:"source,omitempty"`
}

// AsJSON returns the issues as a JSON string.
func (is *Issues) AsJSON() string {
	b, err := json.Marshal(is)
	if err != nil {
		return fmt.Sprintf(`{"error": "failed to marshal JSON: %s"}`, err)
	}
	return string(b)
}

func issuesFrom(source string, issues *cel.Issues) Issues {
	out := Issues{Source: source, Errors: make([]Issue, 0, len(issues.Errors()))}
	for _, err := range issues.Errors() {
		out.Errors = append(out.Errors, Issue{
			Line: err.Location.Line(),
			Col:  err.Location.Column(),
			Msg:  err.Message,
		})
	}
	return out
}

// ParseError is a syntax error in a rule.
type ParseError struct {
	Issues
	original error
}

// Error implements the error interface.
func (pe *ParseError) Error() string {
	return fmt.Sprintf("syntax error in rule %q: %s", pe.Source, pe.original)
}

// Unwrap returns the underlying error.
func (pe *ParseError) Unwrap() error {
	return pe.original
}

// CheckError is a type error in a rule, such as an unknown variable.
type CheckError struct {
	Issues
	original error
}

// Error implements the error interface.
func (ce *CheckError) Error() string {
	return fmt.Sprintf("type error in rule %q: %s", ce.Source, ce.original)
}

// Unwrap returns the underlying error.
func (ce *CheckError) Unwrap() error {
	return ce.original
}

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{
		Issues:   issuesFrom(source, issues),
		original: fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{
		Issues:   issuesFrom(source, issues),
		original: fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}
