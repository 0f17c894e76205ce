// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/net/websocket"
)

// The carafe custom request context that is passed to every request
// handler.
type Context struct {
	// The incoming request that led to this handler being invoked
	Request *http.Request
	// Aggregated parameters from the query string, POST data and the
	// placeholder of the matched route.
	Params Params
	Server *Server
	// The response writer that the handler should write to.
	http.ResponseWriter
	// In the case of websocket: a reference to the connection object.
	// Nil otherwise.
	WebsockConn *websocket.Conn
	// Status sent to the client, 0 until the header is written
	status int
}

func (ctx *Context) WriteHeader(status int) {
	if ctx.status == 0 {
		ctx.status = status
	}
	ctx.ResponseWriter.WriteHeader(status)
}

func (ctx *Context) Write(data []byte) (int, error) {
	if ctx.status == 0 {
		ctx.status = http.StatusOK
	}
	return ctx.ResponseWriter.Write(data)
}

func (ctx *Context) WriteString(content string) (int, error) {
	return ctx.Write([]byte(content))
}

// Status returns the response status written so far, or 0 if the header
// has not been sent yet.
func (ctx *Context) Status() int {
	return ctx.status
}

// Best-effort serialization of response data
func (ctx *Context) writeAnything(i interface{}) error {
	switch typed := i.(type) {
	case string:
		_, err := ctx.WriteString(typed)
		return err
	case []byte:
		_, err := ctx.Write(typed)
		return err
	case io.WriterTo:
		_, err := typed.WriteTo(ctx)
		return err
	case io.Reader:
		_, err := io.Copy(ctx, typed)
		return err
	}
	return errors.New("cannot serialize data for writing to client")
}

func (ctx *Context) Abort(status int, body string) {
	ctx.WriteHeader(status)
	ctx.WriteString(body)
}

func (ctx *Context) Redirect(status int, url_ string) {
	ctx.Header().Set("Location", url_)
	ctx.Abort(status, "Redirecting to: "+url_)
}

func (ctx *Context) NotModified() {
	ctx.WriteHeader(304)
}

func (ctx *Context) NotFound(message string) {
	ctx.Abort(404, message)
}

func (ctx *Context) BadRequest(message string) {
	ctx.Abort(400, message)
}

// Render executes a named template from the server's template set and
// writes the result. The error, if any, is meant to be returned from the
// handler so rendering failures surface as a server error for this one
// request.
func (ctx *Context) Render(name string, vars map[string]interface{}) error {
	body, err := ctx.Server.Templates.Render(name, vars)
	if err != nil {
		return err
	}
	_, err = ctx.WriteString(body)
	return err
}

// Sets the content type by extension, as defined in the mime package.
// For example, ctx.ContentType("json") sets the content-type to
// "application/json". If the supplied extension contains a slash (/) it is
// set as the content-type verbatim without passing it to mime. Returns the
// content type as it was set, or an empty string if none was found.
func (ctx *Context) ContentType(ext string) string {
	ctype := ""
	if strings.ContainsRune(ext, '/') {
		ctype = ext
	} else {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		ctype = mime.TypeByExtension(ext)
	}
	if ctype != "" {
		ctx.Header().Set("Content-Type", ctype)
	}
	return ctype
}

func (ctx *Context) SetHeader(hdr, val string, unique bool) {
	if unique {
		ctx.Header().Set(hdr, val)
	} else {
		ctx.Header().Add(hdr, val)
	}
}

func (ctx *Context) SetCookie(cookie *http.Cookie) {
	http.SetCookie(ctx, cookie)
}
