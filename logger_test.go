// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func handleFoo(ctx *Context) (string, error) {
	return "foo", Error{123, "error!"}
}

// Expected log line
const expectedLog = "GET /foo (a=b) 123 (error!)\n"

type testlogger struct{ *bytes.Buffer }

func (l testlogger) LogRequest(req *http.Request) {
	fmt.Fprint(l, req.Method, " ", req.URL.Path)
}

func (l testlogger) LogParams(p Params) {
	l.WriteRune(' ')
	// If there is exactly one parameter log it
	if len(p) == 1 {
		l.WriteRune('(')
		for k, v := range p {
			fmt.Fprint(l, k, "=", v)
		}
		l.WriteRune(')')
	}
}

func (l testlogger) LogDone(status int, err error) {
	fmt.Fprint(l, " ", status)
	if err != nil {
		fmt.Fprintf(l, " (%v)", err)
	}
	fmt.Fprintln(l)
}

func TestCustomAccessLogger(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(t, GET("/foo", handleFoo))
	s.AccessLogger = func(s *Server) RequestLogger {
		return testlogger{&buf}
	}
	testRouting(t, s, Test{
		method:         "GET",
		path:           "/foo?a=b",
		expectedStatus: 123,
		expectedBody:   "error!",
	})
	// also inspect the log
	require.Equal(t, expectedLog, buf.String())
}

func TestStructuredAccessLogger(t *testing.T) {
	s := newTestServer(t, GET("/home", func() string { return "Hello, Home!" }))
	logger, hook := test.NewNullLogger()
	s.Log = logger
	s.AccessLogger = DefaultAccessLogger

	testRouting(t, s, Test{method: "GET", path: "/home", expectedStatus: 200, expectedBody: "Hello, Home!"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "served", entry.Message)
	require.Equal(t, "GET", entry.Data["method"])
	require.Equal(t, "/home", entry.Data["path"])
	require.Equal(t, 200, entry.Data["status"])
}

func TestStructuredAccessLoggerError(t *testing.T) {
	s := newTestServer(t, GET("/foo", handleFoo))
	logger, hook := test.NewNullLogger()
	s.Log = logger
	s.AccessLogger = DefaultAccessLogger

	testRouting(t, s, Test{method: "GET", path: "/foo", expectedStatus: 123, expectedBody: "error!"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, 123, entry.Data["status"])
}
