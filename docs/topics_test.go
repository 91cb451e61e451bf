package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// topicsInReadme extracts the topic list from readme.md, one "* name: ..."
// line per topic.
func topicsInReadme(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// The manual index and the topic files must stay in sync, both ways.
	listed := topicsInReadme(t)
	if len(listed) == 0 {
		t.Fatal("readme.md lists no topics")
	}

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("unknown topic loaded without error")
	}
}

func TestGetTopic_Star(t *testing.T) {
	content, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Getting started", "# Strategies", "# File formats"} {
		if !strings.Contains(content, want) {
			t.Errorf("concatenated topics miss %q", want)
		}
	}
}

func TestCodeBlocks(t *testing.T) {
	// Every fenced bash block of the manual must parse and carry an sfo
	// invocation; stale examples are the most common documentation rot.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				fcb, ok := n.(*ast.FencedCodeBlock)
				if !ok || fcb.Info == nil {
					return ast.WalkContinue, nil
				}
				if lang := string(fcb.Info.Segment.Value(content)); lang != "bash" {
					return ast.WalkContinue, nil
				}
				var block strings.Builder
				for i := 0; i < fcb.Lines().Len(); i++ {
					line := fcb.Lines().At(i)
					block.WriteString(string(line.Value(content)))
				}
				if !strings.Contains(block.String(), "sfo ") && !strings.Contains(block.String(), "export ") {
					t.Errorf("%s: bash block without an sfo command:\n%s", file, block.String())
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
