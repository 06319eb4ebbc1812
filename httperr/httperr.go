// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr provides exception types that double as minimal HTTP responses.
package httperr

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	httpval "github.com/stacklok/httpexc/validation/http"
)

// ContentTypeHTML is the content type sent with every non-empty rendering.
const ContentTypeHTML = "text/html;charset=utf-8"

// Header is a single response header. Headers are kept as an ordered list so
// renderings are deterministic.
type Header struct {
	Name  string
	Value string
}

// StartResponse receives the status line and headers of a rendering. It is
// invoked exactly once per Render call, before the body is returned.
type StartResponse func(status string, headers []Header)

// Exception is implemented by every type in the taxonomy. Hosting frameworks
// match on it with errors.As and dispatch on Capabilities.
type Exception interface {
	error
	http.Handler

	// GetStatus returns the HTTP status code.
	GetStatus() int
	// Reason returns the stored reason phrase.
	Reason() string
	// Capabilities returns the capability tags declared by the type.
	Capabilities() Capability
	// Render writes the exception as a minimal HTTP response.
	Render(environ map[string]any, start StartResponse) []string
	// HTTP returns the underlying HTTPException.
	HTTP() *HTTPException
}

// HTTPException is the base of the taxonomy. It carries a status code, a
// reason phrase and an optional body, and knows how to render itself.
//
// The zero value is not ready for use; construct with NewHTTPException or one
// of the variant constructors.
type HTTPException struct {
	message   string
	value     any
	status    int
	reason    string
	body      string
	hasBody   bool
	headers   []Header
	title     string
	detail    string
	emptyBody bool
	cause     error
}

var _ Exception = (*HTTPException)(nil)

// NewHTTPException creates an exception with status 500 and the given message.
func NewHTTPException(message string) *HTTPException {
	e := &HTTPException{}
	e.init(message, http.StatusInternalServerError)
	return e
}

func (e *HTTPException) init(message string, status int) {
	e.message = message
	e.value = message
	e.status = status
	e.reason = StatusText(status)
}

// Error implements the error interface. It returns the message, or the
// reason phrase when the message is empty.
func (e *HTTPException) Error() string {
	if e.message == "" {
		return e.reason
	}
	return e.message
}

// String returns the default HTML error page for the exception. It is the
// body used by Render when no explicit body was set.
func (e *HTTPException) String() string {
	return renderPage(e)
}

// Unwrap returns the wrapped cause, if any.
func (e *HTTPException) Unwrap() error {
	return e.cause
}

// HTTP returns e.
func (e *HTTPException) HTTP() *HTTPException {
	return e
}

// Capabilities returns CapHTTPException.
func (*HTTPException) Capabilities() Capability {
	return CapHTTPException
}

// Message returns the exception message.
func (e *HTTPException) Message() string {
	return e.message
}

// Value returns the value the exception was raised with. For exceptions
// created from a message this is the message itself.
func (e *HTTPException) Value() any {
	return e.value
}

// SetValue replaces the raised value and derives the message from it.
func (e *HTTPException) SetValue(v any) {
	e.value = v
	if v == nil {
		e.message = ""
		return
	}
	e.message = fmt.Sprint(v)
}

// SetBody sets the response body.
func (e *HTTPException) SetBody(body string) {
	e.body = body
	e.hasBody = true
}

// SetBodyBytes sets the response body from a byte slice.
func (e *HTTPException) SetBodyBytes(body []byte) {
	e.SetBody(string(body))
}

// Body returns the explicitly set body and whether one was set.
func (e *HTTPException) Body() (string, bool) {
	return e.body, e.hasBody
}

// SetStatus sets the status code. The reason phrase is looked up in the
// status table unless one is supplied. Any integer is accepted; codes that
// are not registered get the reason UnknownReason.
func (e *HTTPException) SetStatus(status int, reason ...string) {
	e.status = status
	if len(reason) > 0 {
		e.reason = reason[0]
		return
	}
	e.reason = StatusText(status)
}

// GetStatus returns the status code.
func (e *HTTPException) GetStatus() int {
	return e.status
}

// Reason returns the stored reason phrase.
func (e *HTTPException) Reason() string {
	return e.reason
}

// SetHeader sets a response header. A header with the same name (compared
// case-insensitively) is replaced in place; otherwise the header is appended.
func (e *HTTPException) SetHeader(name, value string) error {
	if err := httpval.ValidateHeaderName(name); err != nil {
		return fmt.Errorf("invalid header %q: %w", name, err)
	}
	if err := httpval.ValidateHeaderValue(value); err != nil {
		return fmt.Errorf("invalid value for header %q: %w", name, err)
	}
	for i, h := range e.headers {
		if strings.EqualFold(h.Name, name) {
			e.headers[i] = Header{Name: name, Value: value}
			return nil
		}
	}
	e.headers = append(e.headers, Header{Name: name, Value: value})
	return nil
}

// Headers returns a copy of the headers set on the exception.
func (e *HTTPException) Headers() []Header {
	if e.headers == nil {
		return nil
	}
	return append([]Header(nil), e.headers...)
}

// SetTitle sets the title shown on the default error page.
func (e *HTTPException) SetTitle(title string) {
	e.title = title
}

// Title returns the error page title.
func (e *HTTPException) Title() string {
	return e.title
}

// SetDetail sets an HTML fragment shown on the default error page. The
// fragment is inserted verbatim.
func (e *HTTPException) SetDetail(detail string) {
	e.detail = detail
}

// Detail returns the error page detail fragment.
func (e *HTTPException) Detail() string {
	return e.detail
}

// SetEmptyBody controls whether renderings omit the body and content type,
// as required for statuses such as 204 and 304.
func (e *HTTPException) SetEmptyBody(empty bool) {
	e.emptyBody = empty
}

// Render writes the exception through start and returns the body chunks.
//
// The status line always uses the status table phrase, never a custom
// reason given to SetStatus. Unregistered codes render as UnknownReason.
// environ is passed through untouched.
func (e *HTTPException) Render(_ map[string]any, start StartResponse) []string {
	status := fmt.Sprintf("%d %s", e.status, StatusText(e.status))
	headers := make([]Header, 0, len(e.headers)+1)
	headers = append(headers, e.headers...)

	if e.emptyBody {
		start(status, headers)
		return []string{}
	}

	headers = append(headers, Header{Name: "content-type", Value: ContentTypeHTML})
	start(status, headers)
	if e.hasBody {
		return []string{e.body}
	}
	return []string{e.String()}
}

// ServeHTTP implements http.Handler by rendering the exception. Status codes
// net/http cannot write (outside 100-999) are sent as 500.
func (e *HTTPException) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	environ := map[string]any{
		"REQUEST_METHOD": r.Method,
		"PATH_INFO":      r.URL.Path,
		"request":        r,
	}
	chunks := e.Render(environ, func(_ string, headers []Header) {
		for _, h := range headers {
			w.Header().Set(h.Name, h.Value)
		}
		code := e.status
		if code < 100 || code > 999 {
			code = http.StatusInternalServerError
		}
		w.WriteHeader(code)
	})
	for _, chunk := range chunks {
		_, _ = io.WriteString(w, chunk)
	}
}

// Redacted returns a copy of e with the message, value, title, detail and
// explicit body removed. Status, reason, headers and the empty-body flag are
// kept so the copy still renders the same response shape.
func (e *HTTPException) Redacted() *HTTPException {
	return &HTTPException{
		status:    e.status,
		reason:    e.reason,
		headers:   e.Headers(),
		emptyBody: e.emptyBody,
		cause:     e.cause,
	}
}

// WithCode wraps an error in an HTTPException with the given status code.
// The returned error implements Unwrap() for use with errors.Is() and errors.As().
// If err is nil, WithCode returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	e := &HTTPException{}
	e.init(err.Error(), code)
	e.cause = err
	return e
}

// New creates an HTTPException with the given message and status code.
func New(message string, code int) error {
	e := &HTTPException{}
	e.init(message, code)
	return e
}

// Code extracts the HTTP status code from an error.
// It unwraps the error chain looking for an Exception.
// If none is found, it returns http.StatusInternalServerError (500).
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if exc, ok := AsException(err); ok {
		return exc.GetStatus()
	}

	return http.StatusInternalServerError
}

// AsException finds the first taxonomy exception in err's chain.
func AsException(err error) (Exception, bool) {
	var exc Exception
	if errors.As(err, &exc) {
		return exc, true
	}
	return nil, false
}
