// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "root", path: "/", want: nil},
		{name: "single", path: "/hello", want: []string{"hello"}},
		{name: "multiple", path: "/hello/world/test", want: []string{"hello", "world", "test"}},
		{name: "trailing slash", path: "/hello/world/", want: []string{"hello", "world"}},
		{name: "empty middle segment kept", path: "/hello//world", want: []string{"hello", "", "world"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, splitPath(tt.path))
		})
	}
}

func TestCompilePattern(t *testing.T) {
	p, err := compilePattern("/user/{name}")
	require.NoError(t, err)
	require.Equal(t, "name", p.param)
	require.Equal(t, 1, p.paramIdx)

	p, err = compilePattern("/about")
	require.NoError(t, err)
	require.Empty(t, p.param)

	p, err = compilePattern("/")
	require.NoError(t, err)
	require.Empty(t, p.segments)
}

func TestCompilePatternRejects(t *testing.T) {
	bad := []string{
		"user/{name}",      // no leading slash
		"/user/{a}/{b}",    // two placeholders
		"/user/{}",         // unnamed placeholder
		"/user/x{name}",    // literal and placeholder mixed
		"//double",         // empty segment
	}
	for _, pattern := range bad {
		t.Run(pattern, func(t *testing.T) {
			_, err := compilePattern(pattern)
			require.Error(t, err)
		})
	}
}

func TestPatternMatch(t *testing.T) {
	p, err := compilePattern("/user/{name}")
	require.NoError(t, err)

	value, ok := p.match("/user/John")
	require.True(t, ok)
	require.Equal(t, "John", value)

	value, ok = p.match("/user/John/")
	require.True(t, ok)
	require.Equal(t, "John", value)

	for _, path := range []string{"/user", "/user/John/posts", "/group/John", "/"} {
		_, ok := p.match(path)
		require.False(t, ok, "pattern must not match %q", path)
	}
}

func TestPatternMatchLiteral(t *testing.T) {
	p, err := compilePattern("/about")
	require.NoError(t, err)

	_, ok := p.match("/about")
	require.True(t, ok)
	_, ok = p.match("/about/us")
	require.False(t, ok)

	root, err := compilePattern("/")
	require.NoError(t, err)
	_, ok = root.match("/")
	require.True(t, ok)
	_, ok = root.match("/home")
	require.False(t, ok)
}
