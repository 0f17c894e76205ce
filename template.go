// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const templateTTL = 5 * time.Minute

// TemplateSet loads and renders named html/template layouts from a single
// directory. In debug mode every render re-parses the file from disk so
// edits show up without a restart; otherwise parsed templates are kept in
// a TTL cache. Register in-memory templates with AddString before the
// server starts; the set is read-only once requests are being served.
type TemplateSet struct {
	dir    string
	debug  bool
	cache  *gocache.Cache
	source map[string]string
}

func NewTemplateSet(dir string, debug bool) *TemplateSet {
	return &TemplateSet{
		dir:    dir,
		debug:  debug,
		cache:  gocache.New(templateTTL, 2*templateTTL),
		source: map[string]string{},
	}
}

// AddString registers template text under a name, shadowing any file of
// the same name in the template directory.
func (ts *TemplateSet) AddString(name, text string) {
	ts.source[name] = text
}

func (ts *TemplateSet) lookup(name string) (*template.Template, error) {
	if !ts.debug {
		if cached, ok := ts.cache.Get(name); ok {
			return cached.(*template.Template), nil
		}
	}
	var (
		tmpl *template.Template
		err  error
	)
	switch {
	case ts.source[name] != "":
		tmpl, err = template.New(name).Parse(ts.source[name])
	case ts.dir != "":
		tmpl, err = template.ParseFiles(filepath.Join(ts.dir, name))
	default:
		err = fmt.Errorf("no template named %q", name)
	}
	if err != nil {
		return nil, err
	}
	if !ts.debug {
		ts.cache.SetDefault(name, tmpl)
	}
	return tmpl, nil
}

// Render executes the named template with the supplied variables and
// returns the result. The template output is buffered so a rendering
// failure never leaks a half-written body to the client.
func (ts *TemplateSet) Render(name string, vars map[string]interface{}) (string, error) {
	tmpl, err := ts.lookup(name)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", err
	}
	return buf.String(), nil
}
