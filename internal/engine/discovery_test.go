package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"stackscan/internal/config"
	gh "stackscan/internal/github"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q) failed: %v", raw, err)
	}
	return u
}

func newTestGitHubClient(t *testing.T, serverURL string) *gh.Client {
	t.Helper()
	client, err := gh.NewClient(context.Background(), "dummy")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	base := mustParseURL(t, serverURL+"/")
	client.Client.BaseURL = base
	client.Client.UploadURL = base
	return client
}

func TestResolveRequests(t *testing.T) {
	t.Run("explicit repo selectors keep order", func(t *testing.T) {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		client := newTestGitHubClient(t, server.URL)

		for _, name := range []string{"foo", "bar", "baz"} {
			mux.HandleFunc("/repos/acme/"+name, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintf(w, `{"id":1, "name":%q, "owner":{"login":"acme"}, "clone_url":"https://github.com/acme/%s.git"}`, name, name)
			})
		}

		cfg := config.New()
		cfg.Targeting.Repos = []string{"acme/foo", "acme/bar", "acme/baz"}
		requests, err := ResolveRequests(context.Background(), client, cfg)
		if err != nil {
			t.Fatalf("ResolveRequests failed: %v", err)
		}
		if len(requests) != 3 {
			t.Fatalf("got %d requests, want 3", len(requests))
		}
		for i, want := range []string{"foo", "bar", "baz"} {
			if requests[i].Name != want {
				t.Errorf("request %d = %q, want %q", i, requests[i].Name, want)
			}
			if requests[i].URL != "https://github.com/acme/"+want+".git" {
				t.Errorf("request %d url = %q", i, requests[i].URL)
			}
		}
	})

	t.Run("invalid selector errors", func(t *testing.T) {
		server := httptest.NewServer(http.NewServeMux())
		t.Cleanup(server.Close)
		client := newTestGitHubClient(t, server.URL)

		cfg := config.New()
		cfg.Targeting.Repos = []string{"not-a-selector"}
		if _, err := ResolveRequests(context.Background(), client, cfg); err == nil {
			t.Fatal("expected error for selector without owner")
		}
	})

	t.Run("org listing", func(t *testing.T) {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		client := newTestGitHubClient(t, server.URL)

		mux.HandleFunc("/orgs/acme/repos", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[
				{"id":1, "name":"alpha", "owner":{"login":"acme"}, "clone_url":"https://github.com/acme/alpha.git"},
				{"id":2, "name":"beta", "owner":{"login":"acme"}, "clone_url":"https://github.com/acme/beta.git"}
			]`)
		})

		cfg := config.New()
		cfg.Targeting.Org = "acme"
		requests, err := ResolveRequests(context.Background(), client, cfg)
		if err != nil {
			t.Fatalf("ResolveRequests failed: %v", err)
		}
		if len(requests) != 2 || requests[0].Name != "alpha" || requests[1].Name != "beta" {
			t.Fatalf("unexpected requests: %v", requests)
		}
	})

	t.Run("org listing honors max repos", func(t *testing.T) {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		client := newTestGitHubClient(t, server.URL)

		mux.HandleFunc("/orgs/acme/repos", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[
				{"id":1, "name":"alpha", "owner":{"login":"acme"}, "clone_url":"https://github.com/acme/alpha.git"},
				{"id":2, "name":"beta", "owner":{"login":"acme"}, "clone_url":"https://github.com/acme/beta.git"},
				{"id":3, "name":"gamma", "owner":{"login":"acme"}, "clone_url":"https://github.com/acme/gamma.git"}
			]`)
		})

		cfg := config.New()
		cfg.Targeting.Org = "acme"
		cfg.Targeting.MaxRepos = 2
		requests, err := ResolveRequests(context.Background(), client, cfg)
		if err != nil {
			t.Fatalf("ResolveRequests failed: %v", err)
		}
		if len(requests) != 2 {
			t.Fatalf("got %d requests, want 2", len(requests))
		}
	})

	t.Run("user listing", func(t *testing.T) {
		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		client := newTestGitHubClient(t, server.URL)

		mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id":1, "name":"dotfiles", "owner":{"login":"octo"}, "clone_url":"https://github.com/octo/dotfiles.git"}]`)
		})

		cfg := config.New()
		cfg.Targeting.User = "octo"
		requests, err := ResolveRequests(context.Background(), client, cfg)
		if err != nil {
			t.Fatalf("ResolveRequests failed: %v", err)
		}
		if len(requests) != 1 || requests[0].Name != "dotfiles" {
			t.Fatalf("unexpected requests: %v", requests)
		}
	})

	t.Run("no targeting yields no requests", func(t *testing.T) {
		server := httptest.NewServer(http.NewServeMux())
		t.Cleanup(server.Close)
		client := newTestGitHubClient(t, server.URL)

		cfg := config.New()
		requests, err := ResolveRequests(context.Background(), client, cfg)
		if err != nil {
			t.Fatalf("ResolveRequests failed: %v", err)
		}
		if len(requests) != 0 {
			t.Fatalf("expected no requests, got %v", requests)
		}
	})
}
