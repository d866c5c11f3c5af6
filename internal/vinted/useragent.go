package vinted

import (
	"math/rand/v2"
	"net/http"
)

// DefaultUserAgents is the rotation used when none is configured.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Mobile Safari/537.36",
}

// pickUserAgent returns a random entry of agents, or of DefaultUserAgents
// when agents is empty.
func pickUserAgent(agents []string) string {
	if len(agents) == 0 {
		agents = DefaultUserAgents
	}
	return agents[rand.IntN(len(agents))] //nolint:gosec // not security sensitive
}

// setBrowserHeaders gives a request a browser-like signature.
func setBrowserHeaders(h http.Header, userAgent, accept string) {
	h.Set("User-Agent", userAgent)
	h.Set("Accept", accept)
	h.Set("Accept-Language", "fr-FR,fr;q=0.9,en-US;q=0.8,en;q=0.7")
	h.Set("Referer", "https://www.vinted.fr/")
}
