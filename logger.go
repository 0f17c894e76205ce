// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"io/ioutil"
	"net/http"
	"os"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"
)

// Log one request by calling every method in the order defined below.
// Logging may be done in a separate goroutine from handling. Arguments are
// passed by reference for efficiency but MUST NOT be changed!
type RequestLogger interface {
	// Called with the raw incoming request
	LogRequest(*http.Request)
	// Parameters as parsed by carafe
	LogParams(Params)
	// Called when the response has been written to the client. If an error
	// occurred at any point during handling it is passed as an argument,
	// otherwise err is nil.
	LogDone(status int, err error)
}

// Factory function that generates new one-shot request loggers
type AccessLogger func(*Server) RequestLogger

// Simple stateless access logger that emits one structured line per
// request through server.Log
func DefaultAccessLogger(s *Server) RequestLogger {
	return &structuredLogger{entry: logrus.NewEntry(s.Log)}
}

// NopAccessLogger discards all request logging. Handy in tests.
func NopAccessLogger(*Server) RequestLogger {
	return nopRequestLogger{}
}

type structuredLogger struct {
	entry *logrus.Entry
}

func (l *structuredLogger) LogRequest(req *http.Request) {
	l.entry = l.entry.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.URL.Path,
	})
}

func (l *structuredLogger) LogParams(p Params) {
	if len(p) > 0 {
		l.entry.WithField("params", p).Debug("request params")
	}
}

func (l *structuredLogger) LogDone(status int, err error) {
	entry := l.entry.WithField("status", status)
	if err != nil {
		entry.WithError(err).Warn("served with error")
		return
	}
	entry.Info("served")
}

type nopRequestLogger struct{}

func (nopRequestLogger) LogRequest(*http.Request)  {}
func (nopRequestLogger) LogParams(Params)          {}
func (nopRequestLogger) LogDone(status int, _ error) {}

// newLog builds the server logger. Colors are forced only when stdout is
// a terminal, debug mode lowers the level so params and template lookups
// become visible.
func newLog(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   terminal.IsTerminal(syscall.Stdout),
		FullTimestamp: true,
	})
	log.SetOutput(os.Stdout)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// newNopLog is the logger used before configuration has settled and in
// tests that do not care about output.
func newNopLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(ioutil.Discard)
	return log
}
