// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// this file is about the actual handling of a request: it comes in, what
// happens? routing determines which handler is responsible and that is
// then wrapped appropriately and invoked.

package carafe

import (
	"fmt"
	"mime"
	"net"
	"net/http"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/websocket"
)

// ServerConfig is the complete configuration of a Server, passed in at
// construction time. The zero value is usable: no static files, no
// templates, no secure cookies, panics recovered per request.
type ServerConfig struct {
	// Address to listen on when Run is called without an argument
	Addr string
	// Debug enables verbose logging and per-render template reloading
	Debug bool
	// Directories searched for static files after the route table misses.
	// Static serving is off when empty.
	StaticDirs []string
	// Directory the template set loads named templates from
	TemplateDir string
	// Secret used to derive the secure cookie keys
	CookieSecret string
	// Origins allowed to make cross-origin requests. CORS handling is
	// off when empty.
	CORSOrigins []string
	// Let handler panics crash the process instead of answering 500.
	// Mostly useful in tests.
	CrashOnPanic bool
}

// Server dispatches requests against an immutable route table. The table
// is fixed at construction so concurrent requests share it without
// synchronization.
type Server struct {
	Config    ServerConfig
	routes    []*route
	Log       *logrus.Logger
	Templates *TemplateSet
	// Generates one logger per request
	AccessLogger AccessLogger
	// All requests are passed through these wrappers if defined
	Wrappers []Wrapper
	// Save the listener so it can be closed
	l net.Listener
	// Secure cookie keys derived from Config.CookieSecret
	encKey  []byte
	signKey []byte
}

// NewServer compiles the route table and returns a server ready to Run.
// The table is matched in the order given: the first route whose method
// and pattern match the request wins.
func NewServer(conf ServerConfig, table ...Route) (*Server, error) {
	routes, err := compileRoutes(table)
	if err != nil {
		return nil, err
	}
	s := &Server{
		Config:       conf,
		routes:       routes,
		Log:          newLog(conf.Debug),
		Templates:    NewTemplateSet(conf.TemplateDir, conf.Debug),
		AccessLogger: DefaultAccessLogger,
	}
	if conf.CookieSecret != "" {
		s.encKey = genKey(conf.CookieSecret, "carafe-enc")
		s.signKey = genKey(conf.CookieSecret, "carafe-sig")
	}
	// Set two commonly used mimetypes that are often not set by default.
	// Handy for robots.txt and favicon.ico
	mime.AddExtensionType(".txt", "text/plain; charset=utf-8")
	mime.AddExtensionType(".ico", "image/x-icon")
	// Set some default headers
	s.AddWrapper(func(h Handler, ctx *Context) error {
		ctx.Header().Set("Server", "carafe")
		ctx.Header().Set("Date", webTime(time.Now().UTC()))
		return h(ctx)
	})
	return s, nil
}

// Stops the web server
func (s *Server) Close() {
	if s.l != nil {
		s.l.Close()
	}
}

// Queue a response wrapper that is called after all other wrappers
func (s *Server) AddWrapper(wrap Wrapper) {
	s.Wrappers = append(s.Wrappers, wrap)
}

// Calls function with recover block. The first return value is whatever
// the function returns if it didn't panic. The second is what was passed
// to panic() if it did. A panic carrying an Error is treated like the
// handler returning it.
func (s *Server) safelyCall(f func() error) (softerr error, harderr interface{}) {
	defer func() {
		if err := recover(); err != nil {
			if s.Config.CrashOnPanic {
				s.Log.Errorf("panic: %v", err)
				panic(err)
			}
			if werr, ok := err.(Error); ok {
				softerr = werr
				return
			}
			harderr = err
			s.Log.Error("handler crashed with error: ", err)
			for i := 1; ; i++ {
				_, file, line, ok := runtime.Caller(i)
				if !ok {
					break
				}
				s.Log.Error(file, ":", line)
			}
		}
	}()
	return f(), nil
}

// Determine if this route matches this request purely on the basis of the
// method
func matchRouteMethod(req *http.Request, rt *route) bool {
	if req.Method == rt.method {
		return true
	}
	if req.Method == "HEAD" && rt.method == "GET" {
		return true
	}
	if req.Header.Get("Upgrade") == "websocket" && rt.method == "WEBSOCKET" {
		return true
	}
	return false
}

// First matching route wins. Returns the placeholder value extracted from
// the path, if the winning pattern declares one.
func (s *Server) findRoute(req *http.Request) (rt *route, value string, ok bool) {
	for _, rt := range s.routes {
		if !matchRouteMethod(req, rt) {
			continue
		}
		if value, ok := rt.pat.match(req.URL.Path); ok {
			return rt, value, true
		}
	}
	return nil, "", false
}

// Apply the handler to this context and try to handle errors where
// possible
func (s *Server) applyHandler(f Handler, ctx *Context) (err error) {
	softerr, harderr := s.safelyCall(func() error {
		return f(ctx)
	})
	if harderr != nil {
		// there was a panic while calling the handler
		ctx.Abort(500, "Server Error")
		return fmt.Errorf("%v", harderr)
	}
	if softerr != nil {
		if werr, ok := softerr.(Error); ok {
			ctx.Abort(werr.Code, werr.Error())
		} else {
			// Non-web errors are not leaked to the outside
			ctx.Abort(500, "Server Error")
		}
		return softerr
	}
	return nil
}

// If this request corresponds to a static file return its path
func (s *Server) findFile(req *http.Request) string {
	if req.Method != "GET" && req.Method != "HEAD" {
		return ""
	}
	for _, staticDir := range s.Config.StaticDirs {
		staticFile := path.Join(staticDir, req.URL.Path)
		if fileExists(staticFile) {
			return staticFile
		}
	}
	// Try to serve index.html || index.htm
	for _, staticDir := range s.Config.StaticDirs {
		for _, indexFilename := range []string{"index.html", "index.htm"} {
			if indexPath := path.Join(staticDir, req.URL.Path, indexFilename); fileExists(indexPath) {
				return indexPath
			}
		}
	}
	return ""
}

// Fully clothed request handler
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	requestsInFlight.Inc()
	defer requestsInFlight.Dec()

	ctx := &Context{
		Request:        req,
		Params:         Params{},
		Server:         s,
		ResponseWriter: w,
	}

	logger := s.AccessLogger(s)
	logger.LogRequest(req)

	// ignore errors from ParseForm because it's usually harmless
	req.ParseForm()
	for k, v := range req.Form {
		ctx.Params[k] = v[0]
	}

	var simpleh Handler
	rt, value, found := s.findRoute(req)
	switch {
	case found && rt.method == "WEBSOCKET":
		// Wrap websocket handler
		bound := bindParams(rt.handler, paramArgs(rt, value)...)
		simpleh = func(ctx *Context) (err error) {
			websocket.Handler(func(ws *websocket.Conn) {
				ctx.WebsockConn = ws
				err = bound(ctx)
			}).ServeHTTP(ctx.ResponseWriter, req)
			return err
		}
	case found:
		// Set the default content-type
		ctx.ContentType("text/html; charset=utf-8")
		if rt.pat.param != "" {
			ctx.Params[rt.pat.param] = value
		}
		simpleh = bindParams(rt.handler, paramArgs(rt, value)...)
	default:
		if file := s.findFile(req); file != "" {
			// no route matched but there is a file with this name
			simpleh = func(ctx *Context) error {
				http.ServeFile(ctx, ctx.Request, file)
				return nil
			}
		} else {
			// hopeless, 404
			simpleh = func(ctx *Context) error {
				return Error{404, "Page not found"}
			}
		}
	}
	logger.LogParams(ctx.Params)

	for _, wrap := range s.Wrappers {
		simpleh = wrapHandler(wrap, simpleh)
	}
	err := s.applyHandler(simpleh, ctx)

	status := ctx.Status()
	if status == 0 {
		// handler returned without writing, net/http sends 200
		status = http.StatusOK
	}
	countRequest(status, req.Method)
	logger.LogDone(status, err)
}

func paramArgs(rt *route, value string) []string {
	if rt.pat.param == "" {
		return nil
	}
	return []string{value}
}
