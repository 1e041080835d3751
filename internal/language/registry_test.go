package language

import (
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"go.uber.org/zap"
)

func TestRegistry_DetectLanguageFromPath(t *testing.T) {
	r := DefaultRegistry(zap.NewNop())

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain extension", "main.js", "javascript"},
		{"compound name", "config.test.js", "javascript"},
		{"uppercase extension", "MAIN.PY", "python"},
		{"uppercase path", "SRC/APP.GO", "go"},
		{"exact filename", "Dockerfile", "dockerfile"},
		{"filename case-insensitive", "dockerfile", "dockerfile"},
		{"nested path", "a/b/c/server.rb", "ruby"},
		{"empty path", "", Unknown},
		{"extensionless", "README", Unknown},
		{"unregistered extension", "notes.zzz", Unknown},
		{"dot only", ".", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.DetectLanguageFromPath(tt.path); got != tt.want {
				t.Errorf("DetectLanguageFromPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRegistry_DetectLongestExtensionWins(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.AddLanguage(Config{Name: "javascript", Extensions: []string{".js"}})
	r.AddLanguage(Config{Name: "jstest", Extensions: []string{".test.js"}})

	if got := r.DetectLanguageFromPath("config.test.js"); got != "jstest" {
		t.Errorf("DetectLanguageFromPath(config.test.js) = %v, want jstest", got)
	}
	if got := r.DetectLanguageFromPath("app.js"); got != "javascript" {
		t.Errorf("DetectLanguageFromPath(app.js) = %v, want javascript", got)
	}
}

func TestRegistry_AddLanguageUpsert(t *testing.T) {
	r := DefaultRegistry(zap.NewNop())
	before := len(r.SupportedLanguages())

	// Existing name replaces in place.
	r.AddLanguage(Config{Name: "JavaScript", Extensions: []string{".js"}})
	if got := len(r.SupportedLanguages()); got != before {
		t.Errorf("upsert of existing name changed count: got %d, want %d", got, before)
	}

	// New name appends.
	r.AddLanguage(Config{Name: "zig", Extensions: []string{".zig"}})
	if got := len(r.SupportedLanguages()); got != before+1 {
		t.Errorf("adding a new name: got %d languages, want %d", got, before+1)
	}
	if got := r.DetectLanguageFromPath("main.zig"); got != "zig" {
		t.Errorf("DetectLanguageFromPath(main.zig) = %v, want zig", got)
	}
}

func TestRegistry_GetLanguage(t *testing.T) {
	r := DefaultRegistry(zap.NewNop())

	if r.GetLanguage("javascript") == nil {
		t.Error("GetLanguage(javascript) = nil, want grammar")
	}
	if r.GetLanguage("JavaScript") == nil {
		t.Error("GetLanguage(JavaScript) = nil, want grammar (case-insensitive)")
	}
	if r.GetLanguage(".js") == nil {
		t.Error("GetLanguage(.js) = nil, want grammar (extension resolution)")
	}
	if r.GetLanguage("fortran") != nil {
		t.Error("GetLanguage(fortran) != nil for unregistered language")
	}
	if r.GetLanguage(".zzz") != nil {
		t.Error("GetLanguage(.zzz) != nil for unregistered extension")
	}
}

func TestRegistry_GetLanguageCachesGrammar(t *testing.T) {
	calls := 0
	r := NewRegistry(zap.NewNop())
	r.AddLanguage(Config{
		Name: "javascript",
		Grammar: func() *sitter.Language {
			calls++
			return javascript.GetLanguage()
		},
		Extensions: []string{".js"},
	})

	if r.GetLanguage("javascript") == nil || r.GetLanguage("javascript") == nil {
		t.Fatal("GetLanguage(javascript) = nil")
	}
	if calls != 1 {
		t.Errorf("grammar loaded %d times, want 1", calls)
	}
}

func TestRegistry_GrammarLoadFailure(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.AddLanguage(Config{
		Name:       "broken",
		Grammar:    func() *sitter.Language { return nil },
		Extensions: []string{".brk"},
	})
	r.AddLanguage(Config{
		Name:       "panicky",
		Grammar:    func() *sitter.Language { panic("no grammar") },
		Extensions: []string{".pnk"},
	})
	r.AddLanguage(Config{
		Name:       "nofunc",
		Extensions: []string{".nof"},
	})

	for _, name := range []string{"broken", "panicky", "nofunc"} {
		if r.GetLanguage(name) != nil {
			t.Errorf("GetLanguage(%s) != nil, want absent grammar", name)
		}
	}

	// Detection still resolves the language even without a grammar.
	if got := r.DetectLanguageFromPath("x.brk"); got != "broken" {
		t.Errorf("DetectLanguageFromPath(x.brk) = %v, want broken", got)
	}
}

func TestRegistry_DisplayNames(t *testing.T) {
	r := NewRegistry(zap.NewNop())
	r.AddLanguage(Config{Name: "cpp", DisplayName: "C++"})
	r.AddLanguage(Config{Name: "zig"})

	names := r.SupportedLanguageDisplayNames()
	want := []string{"C++", "zig"}
	if len(names) != len(want) {
		t.Fatalf("got %d display names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("display name[%d] = %v, want %v", i, names[i], want[i])
		}
	}
}

func TestConfig_NodeClassification(t *testing.T) {
	withDefaults := Config{Name: "x"}
	if !withDefaults.IsStringNode("string") || !withDefaults.IsStringNode("string_literal") {
		t.Error("default string nodes not recognized")
	}
	if !withDefaults.IsCommentNode("comment") || !withDefaults.IsCommentNode("line_comment") {
		t.Error("default comment nodes not recognized")
	}

	custom := Config{Name: "y", StringNodes: []string{"heredoc"}, CommentNodes: []string{"remark"}}
	if custom.IsStringNode("string") {
		t.Error("custom string set should replace defaults")
	}
	if !custom.IsStringNode("heredoc") || !custom.IsCommentNode("remark") {
		t.Error("custom node sets not recognized")
	}
}
