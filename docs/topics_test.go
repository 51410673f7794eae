package docs

import (
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics keeps the documentation in sync with itself: every topic
// listed in readme.md must load, and every topic file must be listed in
// readme.md.
func TestTopics(t *testing.T) {
	raw, err := os.ReadFile("readme.md")
	if err != nil {
		t.Fatalf("failed to read readme.md: %v", err)
	}

	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	var listed []string
	for _, line := range strings.Split(string(raw), "\n") {
		if m := topicRegex.FindStringSubmatch(line); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if len(listed) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := AllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q exists but is not listed in readme.md", topic)
		}
	}
}

// TestTopicStructure parses each topic as markdown and requires a level-1
// heading at the top.
func TestTopicStructure(t *testing.T) {
	all, err := AllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic: %v", err)
			}
			source := []byte(content)
			doc := goldmark.New().Parser().Parse(text.NewReader(source))

			first := doc.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading", topic)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with a level-%d heading, want level 1", topic, heading.Level)
			}
		})
	}
}
