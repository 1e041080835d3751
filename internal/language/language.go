package language

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Unknown is the language id returned for paths no registered
// language claims.
const Unknown = "unknown"

// GrammarFunc lazily materializes a tree-sitter grammar. Returning nil
// marks the grammar as unavailable; the registry degrades affected files
// to fallback extraction instead of failing the scan.
type GrammarFunc func() *sitter.Language

// Config describes a registered language: how files are mapped to it and
// how its syntax tree is interpreted during extraction.
type Config struct {
	Name        string
	Grammar     GrammarFunc
	Extensions  []string
	Filenames   []string
	DisplayName string

	// StringNodes and CommentNodes are the node types treated as URL
	// candidates during the tree walk. Empty slices inherit the shared
	// defaults.
	StringNodes  []string
	CommentNodes []string
}

var defaultStringNodes = []string{"string", "string_literal"}

var defaultCommentNodes = []string{"comment", "line_comment", "block_comment"}

// Display returns the display name, falling back to the language name.
func (c *Config) Display() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Name
}

// IsStringNode reports whether nodeType is a string-literal construct
// for this language.
func (c *Config) IsStringNode(nodeType string) bool {
	nodes := c.StringNodes
	if len(nodes) == 0 {
		nodes = defaultStringNodes
	}
	return contains(nodes, nodeType)
}

// IsCommentNode reports whether nodeType is a comment construct for
// this language.
func (c *Config) IsCommentNode(nodeType string) bool {
	nodes := c.CommentNodes
	if len(nodes) == 0 {
		nodes = defaultCommentNodes
	}
	return contains(nodes, nodeType)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
