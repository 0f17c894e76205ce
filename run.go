// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/cors"
)

// handler is what actually goes on the wire: the server itself, behind a
// CORS layer when cross-origin access is configured.
func (s *Server) handler() http.Handler {
	if len(s.Config.CORSOrigins) == 0 {
		return s
	}
	return cors.New(cors.Options{
		AllowedOrigins: s.Config.CORSOrigins,
	}).Handler(s)
}

// Listen for HTTP connections. An empty addr falls back to Config.Addr.
func (s *Server) Run(addr string) error {
	if addr == "" {
		addr = s.Config.Addr
	}
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer l.Close()
	s.l = l
	s.Log.Info("carafe serving ", addr)
	return http.Serve(l, s.handler())
}

// Listen for HTTPS connections
func (s *Server) RunTLS(addr, certFile, keyFile string) error {
	if addr == "" {
		addr = s.Config.Addr
	}
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer l.Close()
	s.l = l
	srv := &http.Server{Handler: s.handler()}
	config := &tls.Config{}
	config.Certificates = make([]tls.Certificate, 1)
	config.Certificates[0], err = tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return fmt.Errorf("opening certificate: %s", err)
	}
	tlsListener := tls.NewListener(l, config)
	s.Log.Info("carafe serving with TLS ", addr)
	return srv.Serve(tlsListener)
}
