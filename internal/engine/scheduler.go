package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"stackscan/internal/acquire"
	"stackscan/internal/scan"
)

// PipelineResult pairs a finished outcome with the position of its request
// in the input list, so the collector can slot results back into order.
type PipelineResult struct {
	Index   int
	Outcome scan.Outcome
}

type Scheduler struct {
	analyzer    scan.Analyzer
	cleanup     bool
	concurrency int

	// acquireCopy and cleanupCopy wrap the acquirer. Overridable in tests.
	acquireCopy func(context.Context, scan.Request) (scan.WorkingCopy, error)
	cleanupCopy func(scan.WorkingCopy) error
}

func NewScheduler(acquirer *acquire.Acquirer, analyzer scan.Analyzer, cleanup bool, concurrency int) (*Scheduler, error) {
	if acquirer == nil {
		return nil, errors.New("acquirer is nil")
	}
	if analyzer == nil {
		return nil, errors.New("analyzer is nil")
	}
	if concurrency <= 0 {
		return nil, fmt.Errorf("concurrency must be >= 1, got %d", concurrency)
	}
	return &Scheduler{
		analyzer:    analyzer,
		cleanup:     cleanup,
		concurrency: concurrency,
		acquireCopy: acquirer.Acquire,
		cleanupCopy: acquirer.Cleanup,
	}, nil
}

// Execute streams one PipelineResult per request.
//
// Channel semantics:
//   - Exactly one result is sent for every request, including after context
//     cancellation: requests never scheduled are reported as canceled
//     acquire failures rather than dropped.
//   - Duplicate requests run independently; each gets its own working copy.
//   - The results channel and error channel are both closed reliably.
//   - The error channel carries fatal errors and the cancellation signal;
//     per-repository failures are recorded on the Outcome instead.
func (s *Scheduler) Execute(ctx context.Context, requests []scan.Request) (<-chan PipelineResult, <-chan error) {
	resultsCh := make(chan PipelineResult)
	errCh := make(chan error, 1)

	go func() {
		defer close(resultsCh)
		defer close(errCh)

		trySendErr := func(err error) {
			if err == nil {
				return
			}
			select {
			case errCh <- err:
			default:
			}
		}

		if ctx == nil {
			trySendErr(errors.New("context is nil"))
			return
		}

		// Limit active pipelines (favor repo completion).
		sem := make(chan struct{}, s.concurrency)
		var wg sync.WaitGroup

		for i, req := range requests {
			if err := ctx.Err(); err != nil {
				resultsCh <- PipelineResult{Index: i, Outcome: canceledOutcome(req, err)}
				continue
			}

			select {
			case sem <- struct{}{}:
				// acquired
			case <-ctx.Done():
				resultsCh <- PipelineResult{Index: i, Outcome: canceledOutcome(req, ctx.Err())}
				continue
			}

			wg.Add(1)
			go func(i int, req scan.Request) {
				defer wg.Done()
				defer func() { <-sem }()
				resultsCh <- PipelineResult{Index: i, Outcome: s.runPipeline(ctx, req)}
			}(i, req)
		}

		wg.Wait()
		trySendErr(ctx.Err())
	}()

	return resultsCh, errCh
}

// runPipeline executes acquire, analyze, and cleanup for one request and
// folds the result into a single Outcome.
func (s *Scheduler) runPipeline(ctx context.Context, req scan.Request) scan.Outcome {
	if err := ctx.Err(); err != nil {
		return canceledOutcome(req, err)
	}

	out := scan.Outcome{Repo: req.Name, URL: req.URL}

	wc, err := s.acquireCopy(ctx, req)
	if err != nil {
		out.Status = scan.StatusError
		out.Stage = scan.StageAcquire
		out.Error = err.Error()
		return out
	}

	results, analyzeErr := s.analyzer.Analyze(ctx, wc)
	if analyzeErr != nil {
		out.Status = scan.StatusError
		out.Stage = scan.StageAnalyze
		out.Error = analyzeErr.Error()
	} else {
		out.Status = scan.StatusSuccess
		out.Results = results
	}

	// Cleanup never changes the analysis verdict. A failed removal keeps
	// the workspace path on the outcome so the operator can find it.
	if s.cleanup {
		if cleanupErr := s.cleanupCopy(wc); cleanupErr != nil {
			out.CleanupWarning = cleanupErr.Error()
			out.Workspace = wc.Path
		}
	} else if wc.Temporary {
		out.Workspace = wc.Path
	}

	return out
}

func canceledOutcome(req scan.Request, cause error) scan.Outcome {
	if cause == nil {
		cause = context.Canceled
	}
	return scan.Outcome{
		Repo:   req.Name,
		URL:    req.URL,
		Status: scan.StatusError,
		Stage:  scan.StageAcquire,
		Error:  fmt.Sprintf("%s: %v", acquire.ReasonCanceled, cause),
	}
}
