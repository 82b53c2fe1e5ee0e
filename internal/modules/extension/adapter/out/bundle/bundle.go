// Package bundle holds the unpacked browser extension that feeds the daemon.
package bundle

import "embed"

//go:embed manifest.json background.js content_script.js
var Files embed.FS
