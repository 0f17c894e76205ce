// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"fmt"
	"testing"
)

// Handler names end with three Y/N flags:
// 1. does the handler accept a *Context arg
// 2. does the handler return a body as its first ret val
// 3. does the handler return an error as its last ret val

func handleNNN() {
	return
}

func handleNNY() error {
	return nil
}

func handleNYN() string {
	return "NYN"
}

func handleNYY() (string, error) {
	return "NYY", nil
}

func handleYNN(ctx *Context) {
	fmt.Fprint(ctx, "YNN")
}

func handleYNY(ctx *Context) error {
	fmt.Fprint(ctx, "YNY")
	return nil
}

func handleYYN(ctx *Context) string {
	fmt.Fprint(ctx, "YY")
	return "N"
}

func handleYYY(ctx *Context) (string, error) {
	fmt.Fprint(ctx, "YY")
	return "Y", nil
}

var handlerfTests = []Test{
	{
		method:         "GET",
		path:           "/NNN",
		expectedStatus: 200,
		expectedBody:   "",
	},
	{
		method:         "GET",
		path:           "/NNY",
		expectedStatus: 200,
		expectedBody:   "",
	},
	{
		method:         "GET",
		path:           "/NYN",
		expectedStatus: 200,
		expectedBody:   "NYN",
	},
	{
		method:         "GET",
		path:           "/NYY",
		expectedStatus: 200,
		expectedBody:   "NYY",
	},
	{
		method:         "GET",
		path:           "/YNN",
		expectedStatus: 200,
		expectedBody:   "YNN",
	},
	{
		method:         "GET",
		path:           "/YNY",
		expectedStatus: 200,
		expectedBody:   "YNY",
	},
	{
		method:         "GET",
		path:           "/YYN",
		expectedStatus: 200,
		expectedBody:   "YYN",
	},
	{
		method:         "GET",
		path:           "/YYY",
		expectedStatus: 200,
		expectedBody:   "YYY",
	},
}

func TestHandlerSignatures(t *testing.T) {
	s := newTestServer(t,
		GET("/NNN", handleNNN),
		GET("/NNY", handleNNY),
		GET("/NYN", handleNYN),
		GET("/NYY", handleNYY),
		GET("/YNN", handleYNN),
		GET("/YNY", handleYNY),
		GET("/YYN", handleYYN),
		GET("/YYY", handleYYY),
	)
	for _, test := range handlerfTests {
		t.Run(test.path, func(t *testing.T) {
			testRouting(t, s, test)
		})
	}
}

func TestVariadicHandler(t *testing.T) {
	s := newTestServer(t,
		GET("/v/{name}", func(args ...string) string {
			return fmt.Sprint(len(args), ":", args[0])
		}),
	)
	testRouting(t, s, Test{method: "GET", path: "/v/John", expectedStatus: 200, expectedBody: "1:John"})
}

func TestExtraPlaceholderIgnored(t *testing.T) {
	// handlers that take no arguments may be bound to placeholder routes
	s := newTestServer(t,
		GET("/user/{name}", func() string { return "anyone" }),
	)
	testRouting(t, s, Test{method: "GET", path: "/user/John", expectedStatus: 200, expectedBody: "anyone"})
}
