// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package upgrade

import (
	"fmt"
	"reflect"

	"github.com/stacklok/httpexc/httperr"
)

type constructor func(v any) error

var constructors = map[reflect.Type]constructor{
	HTTPExceptionType: func(v any) error {
		e := httperr.NewHTTPException("")
		e.SetValue(v)
		return e
	},
	BadRequestType: func(v any) error {
		e := httperr.NewBadRequest("")
		e.SetValue(v)
		return e
	},
	UnauthorizedType: func(v any) error {
		e := httperr.NewUnauthorized("")
		e.SetValue(v)
		return e
	},
	ForbiddenType: func(v any) error {
		e := httperr.NewForbidden("")
		e.SetValue(v)
		return e
	},
	NotFoundType: func(v any) error {
		e := httperr.NewNotFound("")
		e.SetValue(v)
		return e
	},
	MethodNotAllowedType: func(v any) error {
		e := httperr.NewMethodNotAllowed("")
		e.SetValue(v)
		return e
	},
	RedirectType: func(v any) error {
		location := ""
		if v != nil {
			location = fmt.Sprint(v)
		}
		e := httperr.NewRedirect(location)
		e.SetValue(v)
		return e
	},
	InternalErrorType: func(v any) error {
		e := httperr.NewInternalError("")
		e.SetValue(v)
		return e
	},
}

// Raise instantiates an upgraded (type, value) pair as an error.
//
// Taxonomy types are constructed with v as their value. For other types, v
// is returned when it already is an error of type t. Anything else becomes
// an InternalError whose value is Legacy{t's name, v}.
func Raise(t reflect.Type, v any) error {
	if ctor, ok := constructors[t]; ok {
		return ctor(v)
	}
	if err, ok := v.(error); ok && t != nil && reflect.TypeOf(err) == t {
		return err
	}

	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	e := httperr.NewInternalError("")
	e.SetValue(Legacy{Name: name, Value: v})
	return e
}
