package extract

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/urlscout/urlscout-go/internal/language"
)

func parseTree(t *testing.T, grammar *sitter.Language, src []byte) *sitter.Tree {
	t.Helper()
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree
}

func jsConfig() *language.Config {
	return &language.Config{
		Name:        "javascript",
		StringNodes: []string{"string", "template_string"},
	}
}

func TestTreeCandidates_Strings(t *testing.T) {
	src := []byte("const api = \"https://example.com/v1\";\n// docs: https://docs.example.com/guide\n")
	tree := parseTree(t, javascript.GetLanguage(), src)

	candidates := TreeCandidates(tree.RootNode(), src, jsConfig(), false)
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates with comments off, want 1", len(candidates))
	}
	c := candidates[0]
	if c.Source != SourceString {
		t.Errorf("candidate source = %v, want %v", c.Source, SourceString)
	}
	if c.Text != `"https://example.com/v1"` {
		t.Errorf("candidate text = %q, quoting must stay intact", c.Text)
	}
	if src[c.Start] != '"' {
		t.Errorf("candidate start %d does not point at the raw literal", c.Start)
	}
}

func TestTreeCandidates_Comments(t *testing.T) {
	src := []byte("const api = \"https://example.com/v1\";\n// docs: https://docs.example.com/guide\n")
	tree := parseTree(t, javascript.GetLanguage(), src)

	candidates := TreeCandidates(tree.RootNode(), src, jsConfig(), true)
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates with comments on, want 2", len(candidates))
	}
	if candidates[0].Source != SourceString || candidates[1].Source != SourceComment {
		t.Errorf("candidate order/sources = %v %v, want string then comment",
			candidates[0].Source, candidates[1].Source)
	}
}

func TestTreeCandidates_DocumentOrder(t *testing.T) {
	src := []byte("a = \"first\"\nb = \"second\"\nc = \"third\"\n")
	tree := parseTree(t, python.GetLanguage(), src)

	cfg := &language.Config{Name: "python", StringNodes: []string{"string"}}
	candidates := TreeCandidates(tree.RootNode(), src, cfg, false)
	if len(candidates) != 3 {
		t.Fatalf("got %d candidates, want 3", len(candidates))
	}
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Start <= candidates[i-1].Start {
			t.Errorf("candidates out of document order: %d before %d",
				candidates[i].Start, candidates[i-1].Start)
		}
	}
}

func TestMatchCandidates_Positions(t *testing.T) {
	src := []byte("const api = \"https://example.com/v1\";\n// docs: https://docs.example.com/guide\n")
	tree := parseTree(t, javascript.GetLanguage(), src)
	idx := NewLineIndex(src)
	m := NewMatcher([]string{"http", "https"}, false)

	candidates := TreeCandidates(tree.RootNode(), src, jsConfig(), true)
	matches := MatchCandidates(candidates, m, idx, 0)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}

	first := matches[0]
	if first.URL != "https://example.com/v1" {
		t.Errorf("URL = %q, want https://example.com/v1", first.URL)
	}
	if first.Line != 1 || first.Column != 14 {
		t.Errorf("position = %d:%d, want 1:14", first.Line, first.Column)
	}
	if string(src[first.Start:first.End]) != first.URL {
		t.Error("offsets do not map back to the URL in raw file bytes")
	}
	if first.Source != SourceString {
		t.Errorf("source = %v, want string", first.Source)
	}

	second := matches[1]
	if second.URL != "https://docs.example.com/guide" {
		t.Errorf("URL = %q, want https://docs.example.com/guide", second.URL)
	}
	if second.Line != 2 || second.Column != 10 {
		t.Errorf("position = %d:%d, want 2:10", second.Line, second.Column)
	}
	if second.Source != SourceComment {
		t.Errorf("source = %v, want comment", second.Source)
	}
}

func TestMatchCandidates_Context(t *testing.T) {
	src := []byte("before\nurl = \"https://example.com\"\nafter\n")
	idx := NewLineIndex(src)
	m := NewMatcher([]string{"http", "https"}, false)

	matches := MatchCandidates(TextCandidate(src), m, idx, 1)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	ctx := matches[0].Context
	want := []string{"before", "url = \"https://example.com\"", "after"}
	if len(ctx) != len(want) {
		t.Fatalf("context = %v, want %v", ctx, want)
	}
	for i := range want {
		if ctx[i] != want[i] {
			t.Errorf("context[%d] = %q, want %q", i, ctx[i], want[i])
		}
	}
}

// Grammar-driven and fallback extraction must agree on the URL text for
// the same literal; only the source tag differs.
func TestStrategiesAgree(t *testing.T) {
	src := []byte("const u = \"https://example.com\";\n")
	tree := parseTree(t, javascript.GetLanguage(), src)
	idx := NewLineIndex(src)
	m := NewMatcher([]string{"http", "https"}, false)

	fromTree := MatchCandidates(TreeCandidates(tree.RootNode(), src, jsConfig(), false), m, idx, 0)
	fromText := MatchCandidates(TextCandidate(src), m, idx, 0)

	if len(fromTree) != 1 || len(fromText) != 1 {
		t.Fatalf("got %d tree matches and %d text matches, want 1 and 1",
			len(fromTree), len(fromText))
	}
	tm, xm := fromTree[0], fromText[0]
	if tm.URL != xm.URL {
		t.Errorf("strategies disagree on URL: %q vs %q", tm.URL, xm.URL)
	}
	if tm.Line != xm.Line || tm.Column != xm.Column || tm.Start != xm.Start || tm.End != xm.End {
		t.Error("strategies disagree on position for the same literal")
	}
	if tm.Source != SourceString || xm.Source != SourceText {
		t.Errorf("source tags = %v/%v, want string/text", tm.Source, xm.Source)
	}
}

func TestTextCandidate(t *testing.T) {
	src := []byte("anything at all")
	candidates := TextCandidate(src)
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].Start != 0 || candidates[0].Source != SourceText || candidates[0].Text != string(src) {
		t.Errorf("unexpected fallback candidate: %+v", candidates[0])
	}
}
