// Package app implements the application layer for ripple.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/ripple/internal/engine/affected"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	workspace    ports.WorkspaceLoader
	changes      ports.ChangeSource
	reports      ports.ReportWriter
	resolver     *affected.Resolver
	log          ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	workspace ports.WorkspaceLoader,
	changes ports.ChangeSource,
	reports ports.ReportWriter,
	resolver *affected.Resolver,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		workspace:    workspace,
		changes:      changes,
		reports:      reports,
		resolver:     resolver,
		log:          log,
		telemetry:    telemetry,
	}
}

// RunOptions carries the per-invocation overrides for a resolution run.
type RunOptions struct {
	// Baseline overrides the configured baseline ref when non-empty.
	Baseline string

	// ReportPath, when non-empty, is where the JSON report is persisted.
	ReportPath string
}

// Affected resolves the changed and dependent package sets for the
// repository rooted at cwd.
func (a *App) Affected(ctx context.Context, cwd string, opts RunOptions) (*domain.AffectedResult, domain.Report, error) {
	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, domain.Report{}, zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Baseline != "" {
		settings.Baseline = opts.Baseline
	}

	ctx, vertex := a.telemetry.Record(ctx, "load workspace")
	universe, err := a.workspace.Load(ctx, cwd, settings)
	vertex.Complete(err)
	if err != nil {
		return nil, domain.Report{}, zerr.Wrap(err, "failed to load workspace")
	}
	a.log.Info(fmt.Sprintf("loaded %d packages", universe.Len()))

	ctx, vertex = a.telemetry.Record(ctx, "collect changes")
	paths, err := a.changes.ChangedFiles(ctx, cwd, settings.Baseline)
	vertex.Complete(err)
	if err != nil {
		return nil, domain.Report{}, zerr.Wrap(err, "failed to collect changed files")
	}

	_, vertex = a.telemetry.Record(ctx, "resolve affected")
	result := a.resolver.Resolve(universe, paths, settings.PackagesRoot)
	vertex.Complete(nil)
	a.log.Info(fmt.Sprintf("resolved %d changed and %d dependent packages", len(result.Changed), len(result.Dependents)))

	report := affected.NewReport(result, settings.Baseline)
	if opts.ReportPath != "" {
		if err := a.reports.Write(opts.ReportPath, report); err != nil {
			return nil, domain.Report{}, zerr.Wrap(err, "failed to write report")
		}
		a.log.Info("report written to " + opts.ReportPath)
	}

	return result, report, nil
}

// Dependencies returns the transitive dependency closure of the referenced
// packages, the references themselves included.
func (a *App) Dependencies(ctx context.Context, cwd string, refs []string) ([]*domain.Package, error) {
	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	ctx, vertex := a.telemetry.Record(ctx, "load workspace")
	universe, err := a.workspace.Load(ctx, cwd, settings)
	vertex.Complete(err)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workspace")
	}

	targets, err := affected.ResolveTargets(universe, refs)
	if err != nil {
		return nil, err
	}

	return affected.AllDependencies(universe, targets), nil
}

// Close releases the application's telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
