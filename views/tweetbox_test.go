package views

import (
	"strings"
	"testing"
)

func TestTweetBox(t *testing.T) {
	if got := TweetBox("hello world", "alice"); got != "alice: hello world" {
		t.Fatalf("with username: got %q", got)
	}
	if got := TweetBox("hello world", ""); got != "hello world" {
		t.Fatalf("without username: got %q", got)
	}
}

func TestRenderTweetPage(t *testing.T) {
	var sb strings.Builder
	if err := RenderTweetPage(&sb, "hello world", "alice"); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "alice: hello world") {
		t.Fatalf("page missing label: %s", out)
	}

	sb.Reset()
	if err := RenderTweetPage(&sb, "<script>alert(1)</script>", "alice"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(sb.String(), "<script>") {
		t.Fatalf("page did not escape markup: %s", sb.String())
	}
}
