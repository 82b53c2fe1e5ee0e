package domain

import (
	"fmt"
	"net"
	"strings"
)

// Files are the extension sources copied verbatim into the export directory.
var Files = []string{"manifest.json", "background.js", "content_script.js"}

// ConfigFile is generated next to Files and read by background.js at startup.
const ConfigFile = "daemon.json"

type DaemonConfig struct {
	BaseURL string `json:"base_url"`
}

// BaseURL turns the daemon listen address into the URL the extension calls.
// Wildcard hosts are replaced by loopback, the only origin the manifest may reach.
func BaseURL(listenAddr string) (string, error) {
	host, port, err := net.SplitHostPort(strings.TrimSpace(listenAddr))
	if err != nil {
		return "", fmt.Errorf("listen address %q: %w", listenAddr, err)
	}
	if port == "" || port == "0" {
		return "", fmt.Errorf("listen address %q has no fixed port", listenAddr)
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port), nil
}
