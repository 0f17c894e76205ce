// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

// Wrapper is called for every request and passed the handler that carafe
// thinks should process this specific request. Use it for global tinkering
// like specialized error pages or site-wide headers.
//
// Carafe does not call the wrapped handler itself: the wrapper must. This
// allows fine-grained control over the context in which to call it and
// what to do with potential errors.
//
// The handler does not have to be a user-defined one: carafe creates
// handlers on the fly for static files and 404 situations. It is whatever
// carafe WOULD have called if no wrapper were defined.
type Wrapper func(Handler, *Context) error

// Bind a request handler to a wrapper
func wrapHandler(wrapper Wrapper, bareh Handler) Handler {
	return func(ctx *Context) error {
		return wrapper(bareh, ctx)
	}
}
