// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package upgrade

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"

	"github.com/stacklok/httpexc/httperr"
	"github.com/stacklok/httpexc/validation/name"
)

// Namespace maps names to the entities they denote. An entity may be a type
// (as a reflect.Type), a function or a plain value; only concrete types that
// implement error count as exception types.
type Namespace map[string]any

// Exception types of the taxonomy.
var (
	HTTPExceptionType    = reflect.TypeFor[*httperr.HTTPException]()
	BadRequestType       = reflect.TypeFor[*httperr.BadRequest]()
	UnauthorizedType     = reflect.TypeFor[*httperr.Unauthorized]()
	ForbiddenType        = reflect.TypeFor[*httperr.Forbidden]()
	NotFoundType         = reflect.TypeFor[*httperr.NotFound]()
	MethodNotAllowedType = reflect.TypeFor[*httperr.MethodNotAllowed]()
	RedirectType         = reflect.TypeFor[*httperr.Redirect]()
	InternalErrorType    = reflect.TypeFor[*httperr.InternalError]()
)

var errorType = reflect.TypeFor[error]()

// builtins holds the standard library error types, together with a few
// non-exception entities living next to them.
var builtins = Namespace{
	"SyntaxError":        reflect.TypeFor[*json.SyntaxError](),
	"UnmarshalTypeError": reflect.TypeFor[*json.UnmarshalTypeError](),
	"NumError":           reflect.TypeFor[*strconv.NumError](),
	"PathError":          reflect.TypeFor[*fs.PathError](),
	"LinkError":          reflect.TypeFor[*os.LinkError](),
	"SyscallError":       reflect.TypeFor[*os.SyscallError](),
	"OpError":            reflect.TypeFor[*net.OpError](),
	"DNSError":           reflect.TypeFor[*net.DNSError](),
	"AddrError":          reflect.TypeFor[*net.AddrError](),
	"MaxBytesError":      reflect.TypeFor[*http.MaxBytesError](),
	"ValueError":         reflect.TypeFor[*reflect.ValueError](),

	"Errorf": fmt.Errorf,
	"New":    errors.New,
	"Is":     errors.Is,
	"As":     errors.As,
	"Join":   errors.Join,
	"Unwrap": errors.Unwrap,
	"EOF":    io.EOF,
}

// taxonomy holds the exported entities of the httperr package.
var taxonomy = Namespace{
	"HTTPException":    HTTPExceptionType,
	"BadRequest":       BadRequestType,
	"Unauthorized":     UnauthorizedType,
	"Forbidden":        ForbiddenType,
	"NotFound":         NotFoundType,
	"MethodNotAllowed": MethodNotAllowedType,
	"Redirect":         RedirectType,
	"InternalError":    InternalErrorType,

	"Exception":     reflect.TypeFor[httperr.Exception](),
	"Capability":    reflect.TypeFor[httperr.Capability](),
	"Header":        reflect.TypeFor[httperr.Header](),
	"New":           httperr.New,
	"WithCode":      httperr.WithCode,
	"Code":          httperr.Code,
	"AsException":   httperr.AsException,
	"HasCapability": httperr.HasCapability,
	"StatusText":    httperr.StatusText,
	"UnknownReason": httperr.UnknownReason,
}

// Bind binds key to entity, replacing any earlier binding. key must be an
// identifier.
func (ns Namespace) Bind(key string, entity any) error {
	if err := name.ValidateIdentifier(key); err != nil {
		return fmt.Errorf("cannot bind %q: %w", key, err)
	}
	ns[key] = entity
	return nil
}

// Builtins returns a copy of the standard library namespace.
func Builtins() Namespace {
	return maps.Clone(builtins)
}

// Taxonomy returns a copy of the httperr namespace.
func Taxonomy() Namespace {
	return maps.Clone(taxonomy)
}

// exceptionType reports whether entity is a concrete type implementing error.
func exceptionType(entity any) (reflect.Type, bool) {
	t, ok := entity.(reflect.Type)
	if !ok || t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Interface || !t.Implements(errorType) {
		return nil, false
	}
	return t, true
}
