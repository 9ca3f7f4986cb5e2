package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v81/github"
	"golang.org/x/sync/errgroup"

	"stackscan/internal/config"
	gh "stackscan/internal/github"
	"stackscan/internal/scan"
)

const (
	defaultDiscoveryRepoLimit = 1000
	explicitResolveWorkers    = 8
)

// ResolveRequests turns the configured targeting into clone requests.
// Org and user scopes list via the API; explicit --repos entries are
// resolved individually so their clone URLs come from the API rather than
// being guessed.
func ResolveRequests(ctx context.Context, client *gh.Client, cfg *config.Config) ([]scan.Request, error) {
	limit := computeRepoLimit(cfg)

	if cfg.Targeting.Org != "" {
		return listOrgRequests(ctx, client, cfg.Targeting.Org, limit)
	}
	if cfg.Targeting.User != "" {
		return listUserRequests(ctx, client, cfg.Targeting.User, limit)
	}
	if len(cfg.Targeting.Repos) > 0 {
		return resolveExplicitRequests(ctx, client, cfg.Targeting.Repos, limit)
	}
	return nil, nil
}

func computeRepoLimit(cfg *config.Config) int {
	limit := defaultDiscoveryRepoLimit
	if cfg.Targeting.MaxRepos > 0 {
		limit = cfg.Targeting.MaxRepos
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

func listOrgRequests(ctx context.Context, client *gh.Client, org string, limit int) ([]scan.Request, error) {
	requests := make([]scan.Request, 0, min(limit, 100))

	opts := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		repos, resp, err := client.Client.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list org repos: %w", err)
		}
		for _, repo := range repos {
			if len(requests) >= limit {
				return requests, nil
			}
			requests = append(requests, requestFromRepo(repo))
		}
		if resp.NextPage == 0 {
			return requests, nil
		}
		opts.Page = resp.NextPage
	}
}

func listUserRequests(ctx context.Context, client *gh.Client, user string, limit int) ([]scan.Request, error) {
	requests := make([]scan.Request, 0, min(limit, 100))

	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		repos, resp, err := client.Client.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list user repos: %w", err)
		}
		for _, repo := range repos {
			if len(requests) >= limit {
				return requests, nil
			}
			requests = append(requests, requestFromRepo(repo))
		}
		if resp.NextPage == 0 {
			return requests, nil
		}
		opts.Page = resp.NextPage
	}
}

// resolveExplicitRequests looks up each owner/name entry concurrently while
// keeping input order in the returned slice.
func resolveExplicitRequests(ctx context.Context, client *gh.Client, entries []string, limit int) ([]scan.Request, error) {
	if len(entries) > limit {
		entries = entries[:limit]
	}

	requests := make([]scan.Request, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(explicitResolveWorkers)

	for i, entry := range entries {
		g.Go(func() error {
			owner, name, ok := strings.Cut(entry, "/")
			if !ok || owner == "" || name == "" {
				return fmt.Errorf("invalid repo selector %q: want owner/name", entry)
			}
			repo, _, err := client.Client.Repositories.Get(gctx, owner, name)
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", entry, err)
			}
			requests[i] = requestFromRepo(repo)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return requests, nil
}

func requestFromRepo(repo *github.Repository) scan.Request {
	return scan.Request{
		Name: repo.GetName(),
		URL:  repo.GetCloneURL(),
	}
}
