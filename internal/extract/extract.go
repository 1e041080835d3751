// Package extract locates URL occurrences inside source files, either
// by walking a parsed syntax tree for string and comment nodes or by
// scanning raw text when no grammar is available.
package extract

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/urlscout/urlscout-go/internal/language"
)

// TreeCandidates walks every descendant of root and collects the text
// of string-literal nodes, plus comment nodes when includeComments is
// set. Candidates keep the raw bytes so match offsets line up with the
// original file. Comment nodes are skipped entirely when comments are
// disabled; matched nodes are not descended into.
func TreeCandidates(root *sitter.Node, src []byte, cfg *language.Config, includeComments bool) []Candidate {
	var candidates []Candidate

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nodeType := n.Type()
		switch {
		case cfg.IsStringNode(nodeType):
			candidates = append(candidates, Candidate{
				Start:  int(n.StartByte()),
				Source: SourceString,
				Text:   string(src[n.StartByte():n.EndByte()]),
			})
		case cfg.IsCommentNode(nodeType):
			if includeComments {
				candidates = append(candidates, Candidate{
					Start:  int(n.StartByte()),
					Source: SourceComment,
					Text:   string(src[n.StartByte():n.EndByte()]),
				})
			}
		default:
			// Reverse order keeps candidates in document order.
			for i := int(n.ChildCount()) - 1; i >= 0; i-- {
				if child := n.Child(i); child != nil {
					stack = append(stack, child)
				}
			}
		}
	}

	return candidates
}

// TextCandidate wraps the whole file as a single fallback candidate.
func TextCandidate(src []byte) []Candidate {
	return []Candidate{{Start: 0, Source: SourceText, Text: string(src)}}
}

// MatchCandidates runs the URL matcher over each candidate and converts
// in-candidate offsets back to file positions. contextLines of 0 means
// no context is captured.
func MatchCandidates(candidates []Candidate, m *Matcher, idx *LineIndex, contextLines int) []Match {
	var matches []Match
	for _, c := range candidates {
		for _, loc := range m.Find(c.Text) {
			start := c.Start + loc[0]
			end := c.Start + loc[1]
			line, column := idx.Position(start)
			matches = append(matches, Match{
				URL:     c.Text[loc[0]:loc[1]],
				Line:    line,
				Column:  column,
				Start:   start,
				End:     end,
				Context: idx.Context(line, contextLines),
				Source:  c.Source,
			})
		}
	}
	return matches
}
