package domain

import (
	"net/url"
	"strings"
)

// Category is the hostname used to bucket accumulated time.
type Category string

// NoCategory is returned for URLs without a parseable host.
const NoCategory Category = ""

func CategoryOf(raw string) Category {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return NoCategory
	}
	return Category(strings.ToLower(parsed.Hostname()))
}

// DistractingSet is the fixed list of categories that trigger the threshold notifier.
type DistractingSet struct {
	members map[Category]struct{}
}

func NewDistractingSet(categories []string) DistractingSet {
	members := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		members[Category(c)] = struct{}{}
	}
	return DistractingSet{members: members}
}

// IsDistracting is an exact match; subdomains are separate categories.
func (s DistractingSet) IsDistracting(category Category) bool {
	if category == NoCategory {
		return false
	}
	_, ok := s.members[category]
	return ok
}
