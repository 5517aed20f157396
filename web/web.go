// Package web holds the single-page client, embedded so the API binary
// serves its own UI.
package web

import "embed"

//go:embed index.html app.js
var Assets embed.FS
