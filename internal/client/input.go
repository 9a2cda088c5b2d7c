package client

import "strings"

// SplitVideoLines turns the multi-line video form field into a clean URL
// list: one URL per line, trimmed, empties dropped.
func SplitVideoLines(block string) []string {
	urls := []string{}
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
