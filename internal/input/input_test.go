package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_TextLines(t *testing.T) {
	content := `
# production repos
https://github.com/acme/widgets.git

https://github.com/acme/gadgets
	# indented comment survives trimming
/srv/repos/local-tool
`
	reqs, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requests, got %d: %+v", len(reqs), reqs)
	}

	want := []struct{ name, url string }{
		{"widgets", "https://github.com/acme/widgets.git"},
		{"gadgets", "https://github.com/acme/gadgets"},
		{"local-tool", "/srv/repos/local-tool"},
	}
	for i, w := range want {
		if reqs[i].Name != w.name {
			t.Errorf("request %d: name = %q, want %q", i, reqs[i].Name, w.name)
		}
		if reqs[i].URL != w.url {
			t.Errorf("request %d: url = %q, want %q", i, reqs[i].URL, w.url)
		}
	}
}

func TestParse_TextPreservesOrderAndDuplicates(t *testing.T) {
	content := "https://example.com/a.git\nhttps://example.com/b.git\nhttps://example.com/a.git\n"
	reqs, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requests (duplicates kept), got %d", len(reqs))
	}
	if reqs[0].URL != reqs[2].URL {
		t.Errorf("duplicate entry not preserved: %q vs %q", reqs[0].URL, reqs[2].URL)
	}
}

func TestParse_JSONArray(t *testing.T) {
	content := `[
		{"name": "custom", "url": "https://github.com/acme/widgets.git"},
		{"url": "https://github.com/acme/gadgets.git"}
	]`
	reqs, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].Name != "custom" {
		t.Errorf("explicit name not honored: got %q", reqs[0].Name)
	}
	if reqs[1].Name != "gadgets" {
		t.Errorf("derived name = %q, want %q", reqs[1].Name, "gadgets")
	}
}

func TestParse_JSONMissingURL(t *testing.T) {
	if _, err := Parse(`[{"name": "no-url"}]`); err == nil {
		t.Fatal("expected error for entry without url")
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	if _, err := Parse(`[{"url": "x"`); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "repos.txt")
	if err := os.WriteFile(path, []byte("https://github.com/acme/widgets.git\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	reqs, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(reqs) != 1 || reqs[0].Name != "widgets" {
		t.Fatalf("unexpected requests: %+v", reqs)
	}
}

func TestParseFile_NotFound(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing input file")
	}
}

func TestNameFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://github.com/acme/widgets.git", "widgets"},
		{"https://github.com/acme/widgets/", "widgets"},
		{"git@github.com:acme/widgets.git", "widgets"},
		{"/srv/repos/local-tool", "local-tool"},
		{"file:///srv/repos/local-tool", "local-tool"},
		{"", "unknown"},
	}
	for _, c := range cases {
		if got := NameFromURL(c.url); got != c.want {
			t.Errorf("NameFromURL(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}
