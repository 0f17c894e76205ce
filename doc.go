// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Carafe is a small web framework built around an explicit route table.
//
// At the core of carafe are request handlers:
//
//	func home() string {
//	    return "Hello, Home!"
//	}
//
// Handlers are bound to URL patterns in a table that is built once, at
// startup, and handed to the server:
//
//	func main() {
//	    s, err := carafe.NewServer(carafe.ServerConfig{},
//	        carafe.GET("/home", home),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    s.Run("127.0.0.1:9999")
//	}
//
// Now visit http://127.0.0.1:9999/home to see the greeting.
//
// A pattern is a sequence of literal path segments and may contain one
// named placeholder segment. The placeholder value is passed to the
// handler as a string argument:
//
//	func hello(name string) string {
//	    return "Hello, " + name + "!"
//	}
//
//	carafe.GET("/user/{name}", hello)
//
// Visit http://127.0.0.1:9999/user/fidodido to see 'Hello, fidodido!'
//
// The first route whose pattern matches the request path wins. Route
// handlers may take a pointer to carafe.Context as their first parameter.
// This variable serves many purposes -- it contains information about the
// request, and it provides methods to control the http connection.
//
// See the examples directory for more examples.
package carafe
