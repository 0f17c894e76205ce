// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// this file is about the route table: patterns made of literal path
// segments plus at most one named placeholder, compiled once at startup
// and matched against incoming paths in registration order.

package carafe

import (
	"fmt"
	"strings"
)

// Route is one entry of the table passed to NewServer. Build them with the
// GET, POST, PUT, DELETE and Websocket constructors.
type Route struct {
	Pattern string
	Method  string
	Handler interface{}
}

// GET binds a handler to pattern for GET requests. HEAD requests are
// served by the same route.
func GET(pattern string, handler interface{}) Route {
	return Route{Pattern: pattern, Method: "GET", Handler: handler}
}

// POST binds a handler to pattern for POST requests.
func POST(pattern string, handler interface{}) Route {
	return Route{Pattern: pattern, Method: "POST", Handler: handler}
}

// PUT binds a handler to pattern for PUT requests.
func PUT(pattern string, handler interface{}) Route {
	return Route{Pattern: pattern, Method: "PUT", Handler: handler}
}

// DELETE binds a handler to pattern for DELETE requests.
func DELETE(pattern string, handler interface{}) Route {
	return Route{Pattern: pattern, Method: "DELETE", Handler: handler}
}

// Websocket binds a websocket handler to pattern. The route matches GET
// requests carrying a websocket upgrade header.
func Websocket(pattern string, handler interface{}) Route {
	return Route{Pattern: pattern, Method: "WEBSOCKET", Handler: handler}
}

// compiled form of a Route.Pattern
type pattern struct {
	raw      string
	segments []string
	// name of the placeholder segment, empty if the pattern is all literals
	param    string
	paramIdx int
}

// Split a path into its segments. A single trailing slash is tolerated so
// that "/user/John/" addresses the same route as "/user/John". The root
// path has no segments.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func compilePattern(raw string) (*pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return nil, fmt.Errorf("pattern %q must start with a slash", raw)
	}
	p := &pattern{raw: raw, segments: splitPath(raw), paramIdx: -1}
	for i, seg := range p.segments {
		switch {
		case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}"):
			name := seg[1 : len(seg)-1]
			if name == "" {
				return nil, fmt.Errorf("pattern %q has an unnamed placeholder", raw)
			}
			if p.param != "" {
				return nil, fmt.Errorf("pattern %q has more than one placeholder", raw)
			}
			p.param = name
			p.paramIdx = i
		case seg == "":
			return nil, fmt.Errorf("pattern %q has an empty segment", raw)
		case strings.ContainsAny(seg, "{}"):
			return nil, fmt.Errorf("pattern %q mixes literal and placeholder text in one segment", raw)
		}
	}
	return p, nil
}

// match reports whether path matches this pattern and, if the pattern has
// a placeholder, the value bound to it. A placeholder only ever binds a
// non-empty path segment.
func (p *pattern) match(path string) (value string, ok bool) {
	segments := splitPath(path)
	if len(segments) != len(p.segments) {
		return "", false
	}
	for i, seg := range segments {
		if i == p.paramIdx {
			if seg == "" {
				return "", false
			}
			value = seg
			continue
		}
		if seg != p.segments[i] {
			return "", false
		}
	}
	return value, true
}

// route is the dispatch-ready form of a Route
type route struct {
	pat     *pattern
	method  string
	handler boundHandler
}

func compileRoutes(table []Route) ([]*route, error) {
	routes := make([]*route, 0, len(table))
	for _, r := range table {
		pat, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, err
		}
		h, err := adaptHandler(r.Handler)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Pattern, err)
		}
		routes = append(routes, &route{pat: pat, method: r.Method, handler: h})
	}
	return routes, nil
}
