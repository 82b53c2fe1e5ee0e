package domain

import "strings"

const (
	ReminderTitle   = "Tab reminder"
	ReminderMessage = "Consider closing distracting tabs during focus time."
)

// Distracting reports the URLs containing any of the sites as a substring.
// This is deliberately looser than the tracker's exact hostname match.
func Distracting(urls, sites []string) []string {
	out := make([]string, 0)
	for _, url := range urls {
		for _, site := range sites {
			if site != "" && strings.Contains(url, site) {
				out = append(out, url)
				break
			}
		}
	}
	return out
}
