// Package acquire materializes repository identifiers into local working
// copies. Remote identifiers are shallow-cloned into the workspace; local
// paths are validated and used in place.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"stackscan/internal/scan"
)

// Reason classifies an acquisition failure.
type Reason string

const (
	ReasonUnsupportedURL Reason = "unsupported-url"
	ReasonPathNotFound   Reason = "path-not-found"
	ReasonSensitivePath  Reason = "sensitive-path"
	ReasonAuthRequired   Reason = "auth-required"
	ReasonRepoNotFound   Reason = "repo-not-found"
	ReasonCloneFailed    Reason = "clone-failed"
	ReasonWorkspace      Reason = "workspace"
	ReasonCanceled       Reason = "canceled"
)

// Error is a classified acquisition failure.
type Error struct {
	Reason Reason
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(reason Reason, err error) *Error {
	return &Error{Reason: reason, Err: err}
}

// ReasonOf extracts the classification from an acquisition error, or empty
// if err was not produced by this package.
func ReasonOf(err error) Reason {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Reason
	}
	return ""
}

var allowedProtocols = []string{"http:", "https:", "ssh:", "file:", "git@"}

var suspiciousChars = regexp.MustCompile("[;&|`$]")

var windowsDrive = regexp.MustCompile(`^[a-zA-Z]:\\`)

// Directories a local-path identifier must not resolve into.
var sensitiveRoots = []string{"/etc", "/usr", "/bin", "/sbin", `C:\Windows`, `C:\Program Files`}

// Acquirer produces working copies. It is safe for concurrent use; each
// Acquire call yields an independent working copy, even for identical
// identifiers.
type Acquirer struct {
	// WorkspaceRoot is the directory cloned copies are created under.
	WorkspaceRoot string

	// CloneTimeout bounds a single clone attempt; 0 disables it. Timeouts
	// are an acquirer concern, never the scheduler's.
	CloneTimeout time.Duration

	// CloneRetries is how many times a failed clone is retried with
	// exponential backoff before giving up. Auth and not-found failures are
	// not retried.
	CloneRetries uint64
}

func New(workspaceRoot string, cloneTimeout time.Duration) *Acquirer {
	return &Acquirer{
		WorkspaceRoot: workspaceRoot,
		CloneTimeout:  cloneTimeout,
		CloneRetries:  2,
	}
}

// Acquire resolves one request into a scan-ready working copy. On failure it
// returns a classified *Error and guarantees nothing was left on disk.
func (a *Acquirer) Acquire(ctx context.Context, req scan.Request) (scan.WorkingCopy, error) {
	if ctx.Err() != nil {
		return scan.WorkingCopy{}, newError(ReasonCanceled, ctx.Err())
	}

	if isLocalPath(req.URL) {
		return a.acquireLocal(req.URL)
	}
	if err := validateRemoteURL(req.URL); err != nil {
		return scan.WorkingCopy{}, err
	}
	return a.acquireRemote(ctx, req)
}

// Cleanup removes a cloned working copy. Pre-existing local paths are never
// removed. Failures are advisory for callers: record them, don't escalate.
func (a *Acquirer) Cleanup(wc scan.WorkingCopy) error {
	if !wc.Temporary || wc.Path == "" {
		return nil
	}
	if err := os.RemoveAll(wc.Path); err != nil {
		return fmt.Errorf("remove working copy %s: %w", wc.Path, err)
	}
	return nil
}

func (a *Acquirer) acquireLocal(raw string) (scan.WorkingCopy, error) {
	resolved := raw
	if resolved == "~" || strings.HasPrefix(resolved, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return scan.WorkingCopy{}, newError(ReasonPathNotFound, fmt.Errorf("resolve home directory: %w", err))
		}
		resolved = filepath.Join(home, strings.TrimPrefix(resolved, "~"))
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return scan.WorkingCopy{}, newError(ReasonPathNotFound, err)
	}

	if _, err := os.Stat(abs); err != nil {
		return scan.WorkingCopy{}, newError(ReasonPathNotFound, fmt.Errorf("local path does not exist: %s", abs))
	}

	for _, root := range sensitiveRoots {
		if strings.HasPrefix(strings.ToLower(abs), strings.ToLower(root)) {
			return scan.WorkingCopy{}, newError(ReasonSensitivePath, fmt.Errorf("path %q is inside a sensitive directory", abs))
		}
	}

	return scan.WorkingCopy{Path: abs, Temporary: false}, nil
}

func (a *Acquirer) acquireRemote(ctx context.Context, req scan.Request) (scan.WorkingCopy, error) {
	if err := os.MkdirAll(a.WorkspaceRoot, 0o755); err != nil {
		return scan.WorkingCopy{}, newError(ReasonWorkspace, fmt.Errorf("create workspace root: %w", err))
	}

	var dir string
	op := func() error {
		// A fresh directory per attempt: go-git may leave partial state in a
		// target after a failed clone.
		d, err := os.MkdirTemp(a.WorkspaceRoot, slug(req.Name)+"-")
		if err != nil {
			return backoff.Permanent(newError(ReasonWorkspace, fmt.Errorf("create working copy dir: %w", err)))
		}

		cloneCtx := ctx
		if a.CloneTimeout > 0 {
			var cancel context.CancelFunc
			cloneCtx, cancel = context.WithTimeout(ctx, a.CloneTimeout)
			defer cancel()
		}

		_, cloneErr := git.PlainCloneContext(cloneCtx, d, false, &git.CloneOptions{
			URL:   req.URL,
			Depth: 1,
			Tags:  git.NoTags,
		})
		if cloneErr != nil {
			_ = os.RemoveAll(d)
			if classified := classifyCloneError(ctx, cloneErr); classified != nil {
				return classified
			}
			return newError(ReasonCloneFailed, cloneErr)
		}

		dir = d
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), a.CloneRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		var ae *Error
		if errors.As(err, &ae) {
			return scan.WorkingCopy{}, ae
		}
		if ctx.Err() != nil {
			return scan.WorkingCopy{}, newError(ReasonCanceled, ctx.Err())
		}
		return scan.WorkingCopy{}, newError(ReasonCloneFailed, err)
	}

	return scan.WorkingCopy{Path: dir, Temporary: true}, nil
}

// classifyCloneError maps known go-git failures to permanent classified
// errors. It returns nil for transient failures that should be retried.
func classifyCloneError(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return backoff.Permanent(newError(ReasonCanceled, ctx.Err()))
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return backoff.Permanent(newError(ReasonAuthRequired, err))
	case errors.Is(err, transport.ErrRepositoryNotFound):
		return backoff.Permanent(newError(ReasonRepoNotFound, err))
	case errors.Is(err, transport.ErrEmptyRemoteRepository):
		return backoff.Permanent(newError(ReasonCloneFailed, err))
	}
	return nil
}

func isLocalPath(raw string) bool {
	return strings.HasPrefix(raw, "/") ||
		strings.HasPrefix(raw, ".") ||
		strings.HasPrefix(raw, "~") ||
		windowsDrive.MatchString(raw)
}

func validateRemoteURL(raw string) error {
	lower := strings.ToLower(raw)
	supported := false
	for _, p := range allowedProtocols {
		if strings.HasPrefix(lower, p) {
			supported = true
			break
		}
	}
	if !supported {
		return newError(ReasonUnsupportedURL,
			fmt.Errorf("unsupported protocol in %q (allowed: %s)", raw, strings.Join(allowedProtocols, ", ")))
	}
	if suspiciousChars.MatchString(raw) {
		return newError(ReasonUnsupportedURL, fmt.Errorf("identifier contains suspicious characters: %q", raw))
	}
	return nil
}

var slugUnsafe = regexp.MustCompile("[^a-z0-9]+")

func slug(name string) string {
	s := slugUnsafe.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "repo"
	}
	return s
}
