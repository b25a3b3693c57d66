package config

import (
	"fmt"
	"strings"
)

// Validate checks a loaded Config for semantic errors beyond what Load catches.
// Returns a list of human-readable error strings, one per issue.
func Validate(cfg *Config) []string {
	var errs []string

	if len(cfg.Patterns) == 0 && len(cfg.Blocks) == 0 {
		errs = append(errs, "config: nothing to apply (set patterns or blocks)")
	}

	errs = append(errs, validatePatterns("patterns", cfg.Patterns)...)

	seen := make(map[string]bool)
	for i, b := range cfg.Blocks {
		switch {
		case b.Name == "":
			errs = append(errs, fmt.Sprintf("blocks[%d].name: required field is empty", i))
		case strings.ContainsAny(b.Name, "\r\n"):
			errs = append(errs, fmt.Sprintf("blocks[%d].name: must be a single line", i))
		case seen[b.Name]:
			errs = append(errs, fmt.Sprintf("blocks[%d].name: duplicate block name %q", i, b.Name))
		default:
			seen[b.Name] = true
		}

		errs = append(errs, validatePatterns(fmt.Sprintf("blocks[%d].patterns", i), b.Patterns)...)
	}

	return errs
}

func validatePatterns(field string, patterns []string) []string {
	var errs []string
	for i, p := range patterns {
		if p == "" {
			errs = append(errs, fmt.Sprintf("%s[%d]: pattern is empty", field, i))
		} else if strings.ContainsAny(p, "\r\n") {
			errs = append(errs, fmt.Sprintf("%s[%d]: pattern must be a single line", field, i))
		}
	}
	return errs
}
