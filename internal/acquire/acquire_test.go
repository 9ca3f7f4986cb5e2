package acquire

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stackscan/internal/scan"
)

func newTestAcquirer(t *testing.T) *Acquirer {
	t.Helper()
	a := New(filepath.Join(t.TempDir(), "workspace"), time.Minute)
	a.CloneRetries = 0
	return a
}

func TestAcquire_LocalPath(t *testing.T) {
	repo := t.TempDir()
	a := newTestAcquirer(t)

	wc, err := a.Acquire(context.Background(), scan.Request{Name: "local", URL: repo})
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if wc.Temporary {
		t.Error("local path must not be marked temporary")
	}
	if wc.Path != repo {
		t.Errorf("path = %q, want %q", wc.Path, repo)
	}
}

func TestAcquire_LocalPathNotFound(t *testing.T) {
	a := newTestAcquirer(t)

	_, err := a.Acquire(context.Background(), scan.Request{Name: "gone", URL: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error for missing local path")
	}
	if ReasonOf(err) != ReasonPathNotFound {
		t.Errorf("reason = %q, want %q", ReasonOf(err), ReasonPathNotFound)
	}
}

func TestAcquire_SensitivePath(t *testing.T) {
	a := newTestAcquirer(t)

	_, err := a.Acquire(context.Background(), scan.Request{Name: "etc", URL: "/etc"})
	if err == nil {
		t.Fatal("expected error for sensitive path")
	}
	if ReasonOf(err) != ReasonSensitivePath {
		t.Errorf("reason = %q, want %q", ReasonOf(err), ReasonSensitivePath)
	}
}

func TestAcquire_UnsupportedProtocol(t *testing.T) {
	a := newTestAcquirer(t)

	for _, url := range []string{
		"ftp://example.com/repo.git",
		"https://example.com/repo.git;rm -rf /",
	} {
		_, err := a.Acquire(context.Background(), scan.Request{Name: "bad", URL: url})
		if err == nil {
			t.Errorf("url %q: expected error", url)
			continue
		}
		if ReasonOf(err) != ReasonUnsupportedURL {
			t.Errorf("url %q: reason = %q, want %q", url, ReasonOf(err), ReasonUnsupportedURL)
		}
	}
}

func TestAcquire_CloneFailureLeavesNothingBehind(t *testing.T) {
	a := newTestAcquirer(t)

	// file:// to a nonexistent path fails without touching the network.
	_, err := a.Acquire(context.Background(), scan.Request{
		Name: "ghost",
		URL:  "file://" + filepath.Join(t.TempDir(), "no-such-repo"),
	})
	if err == nil {
		t.Fatal("expected clone failure")
	}
	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("error %v is not a classified acquire error", err)
	}

	entries, readErr := os.ReadDir(a.WorkspaceRoot)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return // workspace never populated, fine
		}
		t.Fatalf("read workspace: %v", readErr)
	}
	if len(entries) != 0 {
		t.Errorf("workspace not empty after failed clone: %v", entries)
	}
}

func TestAcquire_CanceledContext(t *testing.T) {
	a := newTestAcquirer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Acquire(ctx, scan.Request{Name: "x", URL: "https://example.com/x.git"})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if ReasonOf(err) != ReasonCanceled {
		t.Errorf("reason = %q, want %q", ReasonOf(err), ReasonCanceled)
	}
}

func TestCleanup_TemporaryOnly(t *testing.T) {
	a := newTestAcquirer(t)

	dir := t.TempDir()
	sub := filepath.Join(dir, "clone")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := a.Cleanup(scan.WorkingCopy{Path: sub, Temporary: true}); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if _, err := os.Stat(sub); !os.IsNotExist(err) {
		t.Error("temporary working copy should have been removed")
	}

	// A non-temporary copy must be left alone.
	if err := a.Cleanup(scan.WorkingCopy{Path: dir, Temporary: false}); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("non-temporary path must not be removed")
	}
}

func TestIsLocalPath(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"/srv/repos/x", true},
		{"./x", true},
		{"../x", true},
		{"~/repos/x", true},
		{`C:\repos\x`, true},
		{"https://github.com/acme/x.git", false},
		{"git@github.com:acme/x.git", false},
		{"file:///srv/repos/x", false},
	}
	for _, c := range cases {
		if got := isLocalPath(c.url); got != c.want {
			t.Errorf("isLocalPath(%q) = %v, want %v", c.url, got, c.want)
		}
	}
}

func TestSlug(t *testing.T) {
	cases := []struct{ in, want string }{
		{"My Repo!", "my-repo"},
		{"widgets", "widgets"},
		{"", "repo"},
		{"---", "repo"},
	}
	for _, c := range cases {
		if got := slug(c.in); got != c.want {
			t.Errorf("slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
