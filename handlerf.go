// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

// internal type for user defined handlers. Handlers of slightly differing
// signatures are accepted but adapted at registration to match this one.
// The args are the placeholder values extracted from the request path.
type boundHandler func(ctx *Context, args ...string) error

// Handler is the fully-closed per-request handler: placeholder values, if
// any, have been bound. Also represents handlers carafe creates on the fly
// for static files and 404 situations. Only exported to allow external
// definition of wrappers.
type Handler func(*Context) error

var (
	contextPtrType = reflect.TypeOf((*Context)(nil))
	errorType      = reflect.TypeOf((*error)(nil)).Elem()
)

// Bind placeholder values to a handler
func bindParams(h boundHandler, args ...string) Handler {
	return func(ctx *Context) error {
		return h(ctx, args...)
	}
}

// adaptHandler beats a user supplied handler into the uniform boundHandler
// signature. Accepted shapes, where BODY is string, []byte, io.Reader or
// io.WriterTo and every ARG is a string:
//
//	func(ARG...) BODY
//	func(ARG...) (BODY, error)
//	func(ARG...) error
//	func(ARG...)
//
// each optionally taking a *Context as its first parameter. Any
// http.Handler is accepted as well. An incompatible handler is rejected
// here, at registration, not at request time.
func adaptHandler(f interface{}) (boundHandler, error) {
	if f == nil {
		return nil, errors.New("nil handler")
	}
	if h, ok := f.(http.Handler); ok {
		return func(ctx *Context, args ...string) error {
			h.ServeHTTP(ctx.ResponseWriter, ctx.Request)
			return nil
		}, nil
	}
	fv := reflect.ValueOf(f)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("handler must be a func or http.Handler, got %T", f)
	}

	wantsContext := ft.NumIn() > 0 && ft.In(0) == contextPtrType
	firstString := 0
	if wantsContext {
		firstString = 1
	}
	for i := firstString; i < ft.NumIn(); i++ {
		in := ft.In(i)
		if ft.IsVariadic() && i == ft.NumIn()-1 {
			in = in.Elem()
		}
		if in.Kind() != reflect.String {
			return nil, fmt.Errorf("handler parameter %d must be a string", i)
		}
	}
	// placeholder parameters the handler cannot run without
	required := ft.NumIn() - firstString
	if ft.IsVariadic() {
		required--
	}

	if ft.NumOut() > 2 {
		return nil, errors.New("handler returns too many values")
	}
	returnsError := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1).Implements(errorType)
	returnsBody := ft.NumOut() > 0 && !ft.Out(0).Implements(errorType)
	if ft.NumOut() == 2 && (!returnsBody || !returnsError) {
		return nil, errors.New("two-value handlers must return (body, error)")
	}

	return func(ctx *Context, args ...string) error {
		if len(args) < required {
			return Error{500, "missing parameter"}
		}
		n := len(args)
		if !ft.IsVariadic() && n > required {
			n = required
		}
		in := make([]reflect.Value, 0, firstString+n)
		if wantsContext {
			in = append(in, reflect.ValueOf(ctx))
		}
		for i := 0; i < n; i++ {
			in = append(in, reflect.ValueOf(args[i]))
		}
		out := fv.Call(in)
		if returnsError {
			if last := out[len(out)-1]; !last.IsNil() {
				return last.Interface().(error)
			}
		}
		if returnsBody {
			if body := out[0].Interface(); body != nil {
				return ctx.writeAnything(body)
			}
		}
		return nil
	}, nil
}
