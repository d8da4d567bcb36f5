// Package messages holds the operator-facing strings for the interactive
// session. Each locale is an embedded TOML file; users can override single
// keys from the config file's [messages] table.
package messages

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// supported lists the embedded locales; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Korean,
}

var matcher = language.NewMatcher(supported)

// Catalog is the full set of UI strings. Values are fmt format strings.
type Catalog struct {
	Lang string `toml:"-"`

	GroupHeader  string `toml:"group_header"`
	Entry        string `toml:"entry"` // index, path
	Prompt       string `toml:"prompt"`
	Deleted      string `toml:"deleted"` // path
	Error        string `toml:"error"`   // error
	Skipped      string `toml:"skipped"`
	NoDuplicates string `toml:"no_duplicates"`
	InputClosed  string `toml:"input_closed"` // unanswered group count
	Summary      string `toml:"summary"`      // groups, deleted, failed, bytes freed
}

// verbCounts is the number of fmt verbs each key must carry.
var verbCounts = map[string]int{
	"group_header":  0,
	"entry":         2,
	"prompt":        0,
	"deleted":       1,
	"error":         1,
	"skipped":       0,
	"no_duplicates": 0,
	"input_closed":  1,
	"summary":       4,
}

// Load returns the catalog best matching lang (or the environment locale when
// lang is empty) with overrides applied on top.
func Load(lang string, overrides map[string]string) (*Catalog, error) {
	if lang == "" {
		lang = localeFromEnv()
	}
	tag := Match(lang)

	data, err := locales.ReadFile("locales/" + tag.String() + ".toml")
	if err != nil {
		return nil, fmt.Errorf("no catalog for %s: %w", tag, err)
	}
	c := &Catalog{Lang: tag.String()}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse %s catalog: %w", tag, err)
	}
	if err := c.Apply(overrides); err != nil {
		return nil, err
	}
	return c, nil
}

// Match maps a locale string such as "ko", "ko-KR" or "ko_KR.UTF-8" to one of
// the embedded locales, falling back to English.
func Match(lang string) language.Tag {
	lang = normalizeLocale(lang)
	if lang == "" {
		return supported[0]
	}
	t, err := language.Parse(lang)
	if err != nil {
		return supported[0]
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// Apply overlays overrides (keyed by TOML name) onto c. Unknown keys and
// templates with the wrong number of verbs are rejected.
func (c *Catalog) Apply(overrides map[string]string) error {
	if len(overrides) == 0 {
		return nil
	}
	for key, value := range overrides {
		want, ok := verbCounts[key]
		if !ok {
			return fmt.Errorf("unknown message key %q", key)
		}
		if got := countVerbs(value); got != want {
			return fmt.Errorf("message %q has %d format verbs, want %d", key, got, want)
		}
	}
	data, err := toml.Marshal(overrides)
	if err != nil {
		return fmt.Errorf("encode message overrides: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("apply message overrides: %w", err)
	}
	return nil
}

// localeFromEnv follows the POSIX lookup order for message locales.
func localeFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// normalizeLocale turns POSIX locale names (ko_KR.UTF-8@euro) into BCP 47-ish
// tags (ko-KR). "C" and "POSIX" mean no preference.
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

// countVerbs counts fmt directives, ignoring the %% escape.
func countVerbs(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}
