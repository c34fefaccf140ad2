package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"weave.dev/pkg/weave/internal/adapter"
	"weave.dev/pkg/weave/internal/controller"
	m "weave.dev/pkg/weave/internal/model"
)

// Options configure one injection run. They are validated by NewInjector,
// before any document is touched.
type Options struct {
	// Quiet suppresses progress reporting.
	Quiet bool
	// Relative injects paths relative to each target document's directory.
	Relative bool
	// AddRootSlash prefixes injected paths with "/". Callers default it to
	// the negation of Relative when the user did not set it explicitly.
	AddRootSlash bool
	// RemoveTags strips the literal tag markers from the output.
	RemoveTags bool
	// Empty enables the empty-region sweep after all group substitutions.
	Empty bool
	// StartTag and EndTag override extension-based rule resolution.
	StartTag string
	EndTag   string
	// Name is the tag word embedded in default tag literals (DefaultName
	// when empty).
	Name string
	// Renderer overrides the default per-line rendering policy.
	Renderer Renderer
}

// InjectArgs name the inputs of one run.
type InjectArgs struct {
	Sources []m.Path
	Targets []m.Path
	Exclude []string
	Reports m.Path
	Threads int
}

// Injector is the injection workflow: it gathers the source collection once
// and applies it to every target document.
type Injector interface {
	// Inject performs the full pass and writes changed targets back.
	Inject(ctx context.Context, args InjectArgs) (m.RunReport, error)
	// Estimate performs the same pass without writing anything.
	Estimate(ctx context.Context, args InjectArgs) (m.RunReport, error)
	// Diff returns unified diffs of what Inject would change.
	Diff(ctx context.Context, args InjectArgs) ([]m.FileDiff, error)
	// View displays a previously saved run report.
	View(ctx context.Context, reports m.Path) error
}

type injector struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI

	opts  Options
	rules *TagRules
}

// NewInjector validates the options and builds the injection workflow.
// Configuration errors surface here, before any document is processed.
func NewInjector(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	opts Options,
) (Injector, error) {
	if fsAdapter == nil {
		return nil, fmt.Errorf("fs adapter is required")
	}

	if reportStore == nil {
		return nil, fmt.Errorf("report store is required")
	}

	if ui == nil {
		return nil, fmt.Errorf("ui is required")
	}

	if opts.Name == "" {
		opts.Name = DefaultName
	}

	if opts.Renderer == nil {
		opts.Renderer = DefaultRenderer()
	}

	return &injector{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		opts:            opts,
		rules:           NewTagRules(opts.Name, opts.StartTag, opts.EndTag),
	}, nil
}

func (w *injector) Inject(ctx context.Context, args InjectArgs) (m.RunReport, error) {
	report, err := w.run(ctx, args, true)
	if err != nil {
		return report, err
	}

	if args.Reports != "" {
		if err := w.SaveReport(args.Reports, report); err != nil {
			return report, fmt.Errorf("save report: %w", err)
		}
	}

	return report, nil
}

func (w *injector) Estimate(ctx context.Context, args InjectArgs) (m.RunReport, error) {
	return w.run(ctx, args, false)
}

func (w *injector) Diff(ctx context.Context, args InjectArgs) ([]m.FileDiff, error) {
	sources, err := w.gatherSources(args)
	if err != nil {
		return nil, err
	}

	diffs := make([]m.FileDiff, 0, len(args.Targets))

	for _, target := range args.Targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := w.readTarget(target)
		if err != nil {
			return nil, err
		}

		content, _ := w.process(doc, sources)
		if content == doc.Content {
			continue
		}

		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(doc.Content),
			B:        difflib.SplitLines(content),
			FromFile: string(target),
			ToFile:   string(target) + " (injected)",
			Context:  3,
		})
		if err != nil {
			return nil, fmt.Errorf("diff %s: %w", target, err)
		}

		diffs = append(diffs, m.FileDiff{Target: target, Diff: text})
	}

	return diffs, nil
}

func (w *injector) View(ctx context.Context, reports m.Path) error {
	report, err := w.LoadReport(reports)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	return w.DisplayRunSummary(ctx, report)
}

// run gathers the source collection once and processes every target against
// it. Targets run concurrently; the collection is shared read-only, and a
// target's output is written only after its whole pass succeeded.
func (w *injector) run(ctx context.Context, args InjectArgs, write bool) (m.RunReport, error) {
	report := m.RunReport{StartedAt: time.Now()}

	sources, err := w.gatherSources(args)
	if err != nil {
		slog.Error("gathering source collection failed", "error", err)
		return report, err
	}

	report.Sources = len(sources)

	if !w.opts.Quiet {
		if err := w.Start(ctx, len(args.Targets)); err != nil {
			return report, err
		}
		defer w.Close(ctx)
	}

	targetReports := make([]m.TargetReport, len(args.Targets))

	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, target := range args.Targets {
		i, target := i, target
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			doc, err := w.readTarget(target)
			if err != nil {
				return err
			}

			content, targetReport := w.process(doc, sources)

			if write && targetReport.Changed {
				if err := w.WriteFile(target, []byte(content), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", target, err)
				}
			}

			slog.Debug("processed target",
				"target", target,
				"regions", targetReport.RegionsInjected,
				"files", targetReport.FilesInjected,
				"changed", targetReport.Changed,
			)

			mu.Lock()
			targetReports[i] = targetReport
			mu.Unlock()

			if !w.opts.Quiet {
				w.DisplayTargetDone(groupCtx, targetReport)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return report, err
	}

	report.Targets = targetReports

	return report, nil
}

// process is the pure per-document pass: group, replace, sweep. It never
// touches the filesystem.
func (w *injector) process(doc m.TargetDocument, sources []m.SourceFile) (string, m.TargetReport) {
	groups := GroupFiles(sources, doc.Ext, w.rules)

	outcome := ReplaceRegions(doc, groups, w.opts.Renderer, func(file m.SourceFile) string {
		return w.injectPath(doc, file)
	}, w.opts.RemoveTags)

	content := outcome.Content
	cleared := 0

	if w.opts.Empty {
		content, cleared = SweepEmpty(content, doc.Ext, w.rules, outcome.MatchedStartTags, w.opts.RemoveTags)
	}

	groupReports := make([]m.GroupReport, 0, len(groups))
	for _, group := range groups {
		groupReports = append(groupReports, m.GroupReport{
			StartTag: group.Pair.Start,
			Files:    len(group.Files),
		})
	}

	return content, m.TargetReport{
		Target:          doc.Path,
		Groups:          groupReports,
		RegionsInjected: outcome.Regions,
		FilesInjected:   outcome.Lines,
		RegionsCleared:  cleared,
		Changed:         content != doc.Content,
	}
}

// injectPath shapes the path handed to the renderer: relative to the target
// document when Relative is set, slash-separated, root slash added or
// stripped per AddRootSlash.
func (w *injector) injectPath(doc m.TargetDocument, file m.SourceFile) string {
	path := string(file.Path)

	if w.opts.Relative {
		base := m.Path(filepath.Dir(string(doc.Path)))
		if rel, err := w.RelPath(base, file.Path); err == nil {
			path = string(rel)
		}
	}

	path = filepath.ToSlash(path)

	if w.opts.AddRootSlash {
		return "/" + strings.TrimLeft(path, "/")
	}

	return strings.TrimLeft(path, "/")
}

// gatherSources materializes the source collection. It runs before any target
// is processed; when it fails, every target fails with the same error rather
// than proceeding with a partial collection.
func (w *injector) gatherSources(args InjectArgs) ([]m.SourceFile, error) {
	if len(args.Sources) == 0 {
		return nil, fmt.Errorf("no source files configured")
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return nil, err
	}

	var files []m.SourceFile

	for _, root := range args.Sources {
		info, err := w.FileInfo(root)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", root, err)
		}

		if !info.IsDir() {
			if excluded(string(root), excludes) {
				continue
			}

			file, err := w.loadSource(root)
			if err != nil {
				return nil, err
			}

			files = append(files, file)

			continue
		}

		walkErr := w.Walk(root, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || excluded(path, excludes) {
				return nil
			}

			file, err := w.loadSource(m.Path(path))
			if err != nil {
				return err
			}

			files = append(files, file)

			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("scan %s: %w", root, walkErr)
		}
	}

	return files, nil
}

func (w *injector) loadSource(path m.Path) (m.SourceFile, error) {
	content, err := w.ReadFile(path)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("read source %s: %w", path, err)
	}

	return m.NewSourceFile(path, content), nil
}

func (w *injector) readTarget(path m.Path) (m.TargetDocument, error) {
	content, err := w.ReadFile(path)
	if err != nil {
		return m.TargetDocument{}, fmt.Errorf("read target %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		return m.TargetDocument{}, fmt.Errorf("target %s: not valid UTF-8 text", path)
	}

	return m.NewTargetDocument(path, string(content)), nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func excluded(path string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
