package match

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMatchesInclusion(t *testing.T) {
	rs, err := Compile([]string{"бои", "обстрел"}, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	tests := []struct {
		text string
		want bool
	}{
		{"Бои под Донецком", true},
		{"Обстрел окраин города", true},
		{"Выставка цветов в Киеве", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := rs.Matches(tt.text); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestStopWordVeto(t *testing.T) {
	rs, err := Compile([]string{"войн"}, []string{"зв[её]здны[а-я]{0,2} войн", "Война и мир"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if rs.Matches("Премьера новых Звёздных войн") {
		t.Error("stop-word should veto inclusion match")
	}
	if rs.Matches("Спектакль «Война и мир» в Москве") {
		t.Error("stop-word should veto inclusion match")
	}
	if !rs.Matches("Война на востоке продолжается") {
		t.Error("text without stop-words should match")
	}
}

func TestCaseSensitivePatterns(t *testing.T) {
	// \b around an all-caps acronym must not match the lowercase word,
	// but the lowercase copy of the text is still probed.
	rs, err := Compile([]string{`\bВСУ\b`}, nil)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if !rs.Matches("Позиции ВСУ у линии фронта") {
		t.Error("acronym should match in raw text")
	}
	if rs.Matches("всуе упомянутый") {
		t.Error("pattern must not match inside another word")
	}
}

func TestNoInclusionMeansNoMatch(t *testing.T) {
	rs, err := Compile(nil, []string{"Путин"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if rs.Matches("любой текст") {
		t.Error("empty inclusion set must never match")
	}
}

func TestCompileRejectsBadPattern(t *testing.T) {
	if _, err := Compile([]string{"("}, nil); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.txt")
	content := "\uFEFFбои\n\nобстрел  \nракет\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	patterns, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"бои", "обстрел", "ракет"}
	if len(patterns) != len(want) {
		t.Fatalf("got %d patterns, want %d: %v", len(patterns), len(want), patterns)
	}
	for i := range want {
		if patterns[i] != want[i] {
			t.Errorf("pattern %d = %q, want %q", i, patterns[i], want[i])
		}
	}
}
