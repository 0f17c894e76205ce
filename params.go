// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

import (
	"strconv"
)

type Params map[string]string

// Get a parameter. Panics if not found. Panic object is an Error with
// status 400.
func (p Params) GetString(key string) string {
	val, ok := p[key]
	if !ok {
		panic(Error{400, "Required parameter " + key + " missing"})
	}
	return val
}

// Get a parameter as an integer value. Panics if not found or not a legal
// integer. Panic object is an Error with status 400.
func (p Params) GetInt(key string) int {
	i, err := strconv.Atoi(p.GetString(key))
	if err != nil {
		panic(Error{400, "Illegal integer parameter " + key})
	}
	return i
}
