// Package engine drives a full scan: target resolution, bounded concurrent
// acquire/analyze/cleanup pipelines, and report assembly.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"stackscan/internal/acquire"
	"stackscan/internal/config"
	gh "stackscan/internal/github"
	"stackscan/internal/input"
	"stackscan/internal/output"
	"stackscan/internal/report"
	"stackscan/internal/scan"
)

func exitCodeForRun(fatal, partial bool) int {
	// Exit code contract:
	// 0 = clean run, every repository scanned
	// 2 = partial failure (some repositories errored)
	// 3 = fatal error (scan did not run)
	if fatal {
		return 3
	}
	if partial {
		return 2
	}
	return 0
}

func setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	if !cfg.Output.NoConsole {
		if err := outMgr.AddSink(output.NewConsoleSink(nil, cfg.Output.ConsoleFormat)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Emit Sinks (additional structured streams)
	for _, emit := range cfg.Output.Emit {
		es, err := output.NewEmitSink(os.Stdout, emit)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(es); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Report Sink
	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

type Engine struct {
	Client   *gh.Client
	Analyzer scan.Analyzer

	// schedulerExecute is a test seam for streaming execution.
	// If nil, Engine uses the real acquirer + scheduler.
	schedulerExecute func(ctx context.Context, cfg *config.Config, requests []scan.Request) (<-chan PipelineResult, <-chan error)
}

func NewEngine(client *gh.Client, analyzer scan.Analyzer) *Engine {
	return &Engine{
		Client:   client,
		Analyzer: analyzer,
	}
}

// resolveRequests produces the ordered request list from either the input
// file or GitHub discovery.
func (e *Engine) resolveRequests(ctx context.Context, cfg *config.Config) ([]scan.Request, error) {
	if cfg.Targeting.Input != "" {
		return input.ParseFile(cfg.Targeting.Input)
	}
	if e.Client == nil {
		return nil, errors.New("github client required for discovery targeting")
	}
	return ResolveRequests(ctx, e.Client, cfg)
}

func (e *Engine) executeStream(ctx context.Context, cfg *config.Config, requests []scan.Request) (<-chan PipelineResult, <-chan error) {
	if e.schedulerExecute != nil {
		return e.schedulerExecute(ctx, cfg, requests)
	}

	acquirer := acquire.New(cfg.Runtime.Workspace, cfg.Runtime.CloneTimeout)
	scheduler, err := NewScheduler(acquirer, e.Analyzer, cfg.Runtime.Cleanup, cfg.Runtime.Concurrency)
	if err != nil {
		resCh := make(chan PipelineResult)
		errCh := make(chan error, 1)
		close(resCh)
		errCh <- err
		close(errCh)
		return resCh, errCh
	}
	return scheduler.Execute(ctx, requests)
}

// collectStreamingResults drains the result stream, forwards each outcome
// to the sinks as it lands, and slots it into position so the final report
// preserves request order regardless of completion order.
func collectStreamingResults(requests []scan.Request, resCh <-chan PipelineResult, outMgr *output.Manager) []scan.Outcome {
	outcomes := make([]scan.Outcome, len(requests))
	seen := make([]bool, len(requests))

	for res := range resCh {
		if res.Index < 0 || res.Index >= len(outcomes) {
			continue
		}
		outcomes[res.Index] = res.Outcome
		seen[res.Index] = true
		_ = outMgr.Write(res.Outcome)
	}

	// Backstop: a slot the scheduler never filled is reported rather than
	// silently left zero-valued.
	for i, ok := range seen {
		if ok {
			continue
		}
		outcomes[i] = scan.Outcome{
			Repo:   requests[i].Name,
			URL:    requests[i].URL,
			Status: scan.StatusError,
			Stage:  scan.StageAcquire,
			Error:  "no result produced",
		}
	}
	return outcomes
}

func (e *Engine) Run(ctx context.Context, cfg *config.Config) int {
	if !cfg.Output.NoConsole {
		fmt.Fprintln(os.Stderr, "Resolving repositories...")
	}
	requests, err := e.resolveRequests(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving repositories: %v\n", err)
		return exitCodeForRun(true, false)
	}
	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Found %d repositories.\n", len(requests))
	}

	outMgr, err := setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output sinks: %v\n", err)
		return exitCodeForRun(true, false)
	}
	defer outMgr.Close()

	_ = outMgr.Write(output.Event{Type: "run.started", Repos: len(requests)})

	started := time.Now()
	resCh, errCh := e.executeStream(ctx, cfg, requests)

	outcomes := collectStreamingResults(requests, resCh, outMgr)

	var schedErr error
	// Drain scheduler errors; keep one non-nil error to decide fatality.
	for err := range errCh {
		if err != nil {
			schedErr = err
		}
	}

	rep := report.Assemble(started, time.Since(started), outcomes)
	_ = outMgr.Write(rep)

	// Cancellation is not fatal: every request already carries a canceled
	// outcome in the report, so it surfaces as partial failure.
	fatal := schedErr != nil &&
		!errors.Is(schedErr, context.Canceled) &&
		!errors.Is(schedErr, context.DeadlineExceeded)
	code := exitCodeForRun(fatal, rep.Failed > 0)

	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Scanned %d repositories: %d succeeded, %d failed (%s)\n",
			rep.Total, rep.Succeeded, rep.Failed, time.Since(started).Truncate(time.Millisecond))
	}
	if fatal {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", schedErr)
	}

	_ = outMgr.Write(output.Event{Type: "run.finished", ExitCode: code})
	return code
}
