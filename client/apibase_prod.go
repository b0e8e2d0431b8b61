//go:build production

package client

// production is true in builds tagged "production"; the client talks to the
// proxy, which rewrites /api to the backend.
const production = true
