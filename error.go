// Copyright © 2024 The Carafe Authors
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package carafe

// Error is a request-scoped failure with an associated HTTP status. A
// handler that returns an Error controls the status and body of the error
// response; any other error is reported to the client as a plain 500.
type Error struct {
	Code int
	Err  string
}

func (err Error) Error() string {
	return err.Err
}
