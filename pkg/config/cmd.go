package config

import "strings"

// splitCmd parses a whitespace-separated command line into argv. Quoting is
// intentionally not supported; scraper commands with complex arguments should
// be wrapped in a shell script.
func splitCmd(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
