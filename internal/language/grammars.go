package language

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/dockerfile"
	"github.com/smacker/go-tree-sitter/elixir"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/hcl"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/kotlin"
	"github.com/smacker/go-tree-sitter/lua"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/scala"
	"github.com/smacker/go-tree-sitter/swift"
	"github.com/smacker/go-tree-sitter/toml"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"github.com/smacker/go-tree-sitter/yaml"
	"go.uber.org/zap"
)

// DefaultRegistry returns a registry populated with every bundled
// grammar. Callers extend or override entries with AddLanguage.
func DefaultRegistry(logger *zap.Logger) *Registry {
	r := NewRegistry(logger)
	for _, cfg := range defaultLanguages() {
		r.AddLanguage(cfg)
	}
	return r
}

func defaultLanguages() []Config {
	return []Config{
		{
			Name:        "javascript",
			DisplayName: "JavaScript",
			Grammar:     func() *sitter.Language { return javascript.GetLanguage() },
			Extensions:  []string{".js", ".mjs", ".cjs", ".jsx"},
			StringNodes: []string{"string", "template_string"},
		},
		{
			Name:        "typescript",
			DisplayName: "TypeScript",
			Grammar:     func() *sitter.Language { return typescript.GetLanguage() },
			Extensions:  []string{".ts", ".mts", ".cts"},
			StringNodes: []string{"string", "template_string"},
		},
		{
			Name:        "tsx",
			DisplayName: "TSX",
			Grammar:     func() *sitter.Language { return tsx.GetLanguage() },
			Extensions:  []string{".tsx"},
			StringNodes: []string{"string", "template_string"},
		},
		{
			Name:        "python",
			DisplayName: "Python",
			Grammar:     func() *sitter.Language { return python.GetLanguage() },
			Extensions:  []string{".py", ".pyw"},
			StringNodes: []string{"string"},
		},
		{
			Name:        "go",
			DisplayName: "Go",
			Grammar:     func() *sitter.Language { return golang.GetLanguage() },
			Extensions:  []string{".go"},
			StringNodes: []string{"interpreted_string_literal", "raw_string_literal"},
		},
		{
			Name:        "java",
			DisplayName: "Java",
			Grammar:     func() *sitter.Language { return java.GetLanguage() },
			Extensions:  []string{".java"},
			StringNodes: []string{"string_literal", "text_block"},
		},
		{
			Name:        "c",
			DisplayName: "C",
			Grammar:     func() *sitter.Language { return c.GetLanguage() },
			Extensions:  []string{".c", ".h"},
			StringNodes: []string{"string_literal"},
		},
		{
			Name:        "cpp",
			DisplayName: "C++",
			Grammar:     func() *sitter.Language { return cpp.GetLanguage() },
			Extensions:  []string{".cpp", ".cc", ".cxx", ".hpp", ".hxx", ".hh"},
			StringNodes: []string{"string_literal", "raw_string_literal"},
		},
		{
			Name:        "rust",
			DisplayName: "Rust",
			Grammar:     func() *sitter.Language { return rust.GetLanguage() },
			Extensions:  []string{".rs"},
			StringNodes: []string{"string_literal", "raw_string_literal"},
		},
		{
			Name:         "ruby",
			DisplayName:  "Ruby",
			Grammar:      func() *sitter.Language { return ruby.GetLanguage() },
			Extensions:   []string{".rb", ".rake", ".gemspec"},
			Filenames:    []string{"Rakefile", "Gemfile"},
			StringNodes:  []string{"string", "heredoc_body"},
			CommentNodes: []string{"comment"},
		},
		{
			Name:        "php",
			DisplayName: "PHP",
			Grammar:     func() *sitter.Language { return php.GetLanguage() },
			Extensions:  []string{".php"},
			StringNodes: []string{"string", "encapsed_string", "heredoc"},
		},
		{
			Name:         "bash",
			DisplayName:  "Shell",
			Grammar:      func() *sitter.Language { return bash.GetLanguage() },
			Extensions:   []string{".sh", ".bash"},
			Filenames:    []string{".bashrc", ".bash_profile", ".zshrc"},
			StringNodes:  []string{"string", "raw_string", "heredoc_body"},
			CommentNodes: []string{"comment"},
		},
		{
			Name:         "kotlin",
			DisplayName:  "Kotlin",
			Grammar:      func() *sitter.Language { return kotlin.GetLanguage() },
			Extensions:   []string{".kt", ".kts"},
			StringNodes:  []string{"string_literal"},
			CommentNodes: []string{"comment", "line_comment", "multiline_comment"},
		},
		{
			Name:         "swift",
			DisplayName:  "Swift",
			Grammar:      func() *sitter.Language { return swift.GetLanguage() },
			Extensions:   []string{".swift"},
			StringNodes:  []string{"line_string_literal", "multi_line_string_literal"},
			CommentNodes: []string{"comment", "multiline_comment"},
		},
		{
			Name:        "scala",
			DisplayName: "Scala",
			Grammar:     func() *sitter.Language { return scala.GetLanguage() },
			Extensions:  []string{".scala", ".sc"},
			StringNodes: []string{"string", "interpolated_string_expression"},
		},
		{
			Name:        "lua",
			DisplayName: "Lua",
			Grammar:     func() *sitter.Language { return lua.GetLanguage() },
			Extensions:  []string{".lua"},
			StringNodes: []string{"string"},
		},
		{
			Name:        "elixir",
			DisplayName: "Elixir",
			Grammar:     func() *sitter.Language { return elixir.GetLanguage() },
			Extensions:  []string{".ex", ".exs"},
			StringNodes: []string{"string", "charlist"},
		},
		{
			Name:        "html",
			DisplayName: "HTML",
			Grammar:     func() *sitter.Language { return html.GetLanguage() },
			Extensions:  []string{".html", ".htm"},
			StringNodes: []string{"attribute_value", "quoted_attribute_value", "raw_text"},
		},
		{
			Name:        "css",
			DisplayName: "CSS",
			Grammar:     func() *sitter.Language { return css.GetLanguage() },
			Extensions:  []string{".css"},
			StringNodes: []string{"string_value", "plain_value"},
		},
		{
			Name:        "yaml",
			DisplayName: "YAML",
			Grammar:     func() *sitter.Language { return yaml.GetLanguage() },
			Extensions:  []string{".yaml", ".yml"},
			StringNodes: []string{"string_scalar", "single_quote_scalar", "double_quote_scalar", "block_scalar"},
		},
		{
			Name:        "toml",
			DisplayName: "TOML",
			Grammar:     func() *sitter.Language { return toml.GetLanguage() },
			Extensions:  []string{".toml"},
			StringNodes: []string{"string"},
		},
		{
			Name:        "dockerfile",
			DisplayName: "Dockerfile",
			Grammar:     func() *sitter.Language { return dockerfile.GetLanguage() },
			Extensions:  []string{".dockerfile"},
			Filenames:   []string{"Dockerfile", "Containerfile"},
			StringNodes: []string{"double_quoted_string", "unquoted_string"},
		},
		{
			Name:        "hcl",
			DisplayName: "HCL",
			Grammar:     func() *sitter.Language { return hcl.GetLanguage() },
			Extensions:  []string{".tf", ".tfvars", ".hcl"},
			StringNodes: []string{"string_lit", "quoted_template", "template_literal"},
		},
	}
}
