// Package guide serves the embedded user manual shown by the guide
// command.
package guide

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

// Topics lists the available guide topics in sorted order.
func Topics() []string {
	entries, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return nil
	}
	topics := make([]string, 0, len(entries))
	for _, p := range entries {
		topics = append(topics, strings.TrimSuffix(path.Base(p), ".md"))
	}
	sort.Strings(topics)
	return topics
}

// Get returns the markdown body for a topic.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}
	b, err := contentFS.ReadFile("content/" + topic + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}
