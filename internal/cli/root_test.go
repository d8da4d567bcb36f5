package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/casedup/internal/check"
	"github.com/spf13/afero"
)

func TestRoot_DeletesChosenEntry(t *testing.T) {
	fsys := sampleTree(t)
	stdout, _, err := execute(t, fsys, "1\n", "/data")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"[0] /data/A.txt", "[1] /data/a.txt", "Deleted: /data/a.txt"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	assertExists(t, fsys, "/data/A.txt", true)
	assertExists(t, fsys, "/data/a.txt", false)
	assertExists(t, fsys, "/data/b.txt", true)
}

func TestRoot_BannerGoesToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, sampleTree(t), "\n", "/data")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, "casedup test") {
		t.Errorf("stderr missing banner:\n%s", stderr)
	}
	if strings.Contains(stdout, "casedup test") {
		t.Errorf("banner leaked to stdout:\n%s", stdout)
	}
}

func TestRoot_ExitCodes(t *testing.T) {
	fsys := sampleTree(t)
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  error
	}{
		{"missing root", []string{"/nope"}, ExitRoot, check.ErrRootNotFound},
		{"root is file", []string{"/data/b.txt"}, ExitRoot, check.ErrRootNotDir},
		{"bad key env", nil, ExitConfig, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.args == nil {
				t.Setenv("CASEDUP_KEY", "inode")
			}
			_, _, err := execute(t, fsys, "", tt.args...)
			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("err = %v, want *ExitError", err)
			}
			if exitErr.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", exitErr.Code, tt.wantCode)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRoot_RejectsBadArgs(t *testing.T) {
	fsys := sampleTree(t)
	if _, _, err := execute(t, fsys, "", "/data", "/other"); err == nil {
		t.Error("two positional roots accepted")
	}
	if _, _, err := execute(t, fsys, "", "--key", "inode", "/data"); err == nil {
		t.Error("invalid --key accepted")
	}
}

func TestRoot_SlashOnlyRootScansFilesystemRoot(t *testing.T) {
	stdout, _, err := execute(t, sampleTree(t), "\n", "//")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "[0] /data/A.txt") {
		t.Errorf("root not scanned:\n%s", stdout)
	}
}

func TestRoot_NameKeyAndKorean(t *testing.T) {
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "/data/x/Song.mp3")
	touch(t, fsys, "/data/y/song.MP3")

	stdout, _, err := execute(t, fsys, "0\n", "--key", "name", "--lang", "ko", "/data")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"--- 중복 그룹 발견 ---", "삭제 완료: /data/x/Song.mp3"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	assertExists(t, fsys, "/data/x/Song.mp3", false)
	assertExists(t, fsys, "/data/y/song.MP3", true)
}

func TestRoot_LogFileRecordsDeletions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "casedup.log")
	if _, _, err := execute(t, sampleTree(t), "0\n", "--log", logPath, "/data"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Scan started", "Deleted /data/A.txt", "Scan finished", "audit=true"} {
		if !bytes.Contains(b, []byte(want)) {
			t.Errorf("log file missing %q:\n%s", want, b)
		}
	}
}

func TestRoot_ConfigFileMessages(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "casedup.toml")
	content := "key = \"path\"\n\n[messages]\nskipped = \"Left alone.\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout, _, err := execute(t, sampleTree(t), "\n", "--config", cfgPath, "/data")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stdout, "Left alone.") {
		t.Errorf("override not applied:\n%s", stdout)
	}
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	e := &ExitError{Code: ExitRoot, Err: inner}
	if e.Error() != "boom" || !errors.Is(e, inner) {
		t.Errorf("wrapped ExitError = %q", e.Error())
	}
	if got := (&ExitError{Code: 3}).Error(); got != "exit status 3" {
		t.Errorf("bare ExitError = %q", got)
	}
}

// --- Helpers ---

// sampleTree has one duplicate group (/data/A.txt, /data/a.txt) and one
// singleton.
func sampleTree(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	touch(t, fsys, "/data/A.txt")
	touch(t, fsys, "/data/a.txt")
	touch(t, fsys, "/data/b.txt")
	return fsys
}

func execute(t *testing.T, fsys afero.Fs, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	cmd := NewRootCommand(fsys, "test")
	var stdout, stderr bytes.Buffer
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func touch(t *testing.T, fsys afero.Fs, path string) {
	t.Helper()
	if err := afero.WriteFile(fsys, path, []byte(path), 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
}

func assertExists(t *testing.T, fsys afero.Fs, path string, want bool) {
	t.Helper()
	ok, err := afero.Exists(fsys, path)
	if err != nil {
		t.Fatalf("Exists(%s): %v", path, err)
	}
	if ok != want {
		t.Errorf("Exists(%s) = %v, want %v", path, ok, want)
	}
}
