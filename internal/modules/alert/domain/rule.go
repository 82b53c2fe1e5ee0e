package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule fires a notification when an active tab finishes loading a matching URL.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Title   string
	Message string
}

func NewRule(name, pattern, title, message string) (Rule, error) {
	if strings.TrimSpace(pattern) == "" {
		return Rule{}, fmt.Errorf("rule %q: pattern is required", name)
	}
	if strings.TrimSpace(title) == "" {
		return Rule{}, fmt.Errorf("rule %q: title is required", name)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: compile pattern: %w", name, err)
	}
	return Rule{Name: name, Pattern: re, Title: title, Message: message}, nil
}

// Match returns the first rule matching url. Order is significant.
func Match(rules []Rule, url string) (Rule, bool) {
	if url == "" {
		return Rule{}, false
	}
	for _, rule := range rules {
		if rule.Pattern.MatchString(url) {
			return rule, true
		}
	}
	return Rule{}, false
}
