//go:build !production

package client

// production is false in development builds; the client talks to the
// backend directly.
const production = false
