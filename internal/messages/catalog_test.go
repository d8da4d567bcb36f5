package messages

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want language.Tag
	}{
		{"empty falls back", "", language.English},
		{"plain english", "en", language.English},
		{"plain korean", "ko", language.Korean},
		{"region tag", "ko-KR", language.Korean},
		{"posix locale", "ko_KR.UTF-8", language.Korean},
		{"posix modifier", "en_GB@euro", language.English},
		{"C locale", "C", language.English},
		{"unsupported", "fr", language.English},
		{"garbage", "!!", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.in); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoad_EmbeddedLocalesComplete(t *testing.T) {
	for _, tag := range supported {
		t.Run(tag.String(), func(t *testing.T) {
			c, err := Load(tag.String(), nil)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if c.Lang != tag.String() {
				t.Errorf("Lang = %q, want %q", c.Lang, tag)
			}
			fields := map[string]string{
				"group_header":  c.GroupHeader,
				"entry":         c.Entry,
				"prompt":        c.Prompt,
				"deleted":       c.Deleted,
				"error":         c.Error,
				"skipped":       c.Skipped,
				"no_duplicates": c.NoDuplicates,
				"input_closed":  c.InputClosed,
				"summary":       c.Summary,
			}
			for key, value := range fields {
				if value == "" {
					t.Errorf("%s is empty", key)
				}
				if got, want := countVerbs(value), verbCounts[key]; got != want {
					t.Errorf("%s has %d verbs, want %d", key, got, want)
				}
			}
		})
	}
}

func TestLoad_KoreanStrings(t *testing.T) {
	c, err := Load("ko", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(c.GroupHeader, "중복 그룹 발견") {
		t.Errorf("GroupHeader = %q", c.GroupHeader)
	}
	if c.Deleted != "삭제 완료: %s" {
		t.Errorf("Deleted = %q", c.Deleted)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "ko_KR.UTF-8")
	c, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Lang != "ko" {
		t.Errorf("Lang = %q, want ko", c.Lang)
	}
}

func TestApply_Overrides(t *testing.T) {
	c, err := Load("en", map[string]string{"deleted": "gone -> %s", "skipped": "next"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Deleted != "gone -> %s" {
		t.Errorf("Deleted = %q", c.Deleted)
	}
	if c.Skipped != "next" {
		t.Errorf("Skipped = %q", c.Skipped)
	}
	if c.Prompt == "" {
		t.Error("untouched keys must keep their locale value")
	}
}

func TestApply_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"unknown key", map[string]string{"farewell": "bye"}},
		{"missing verb", map[string]string{"deleted": "gone"}},
		{"extra verb", map[string]string{"prompt": "pick %d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load("en", tt.overrides); err == nil {
				t.Error("Load() should reject the override")
			}
		})
	}
}

func TestCountVerbs(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"plain", 0},
		{"[%d] %s", 2},
		{"100%% done", 0},
		{"%d%% of %s", 2},
	}
	for _, tt := range tests {
		if got := countVerbs(tt.in); got != tt.want {
			t.Errorf("countVerbs(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
