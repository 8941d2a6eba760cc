package pack

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"l10n-sync/core/logger"
	"l10n-sync/core/reconcile"
	"l10n-sync/core/stringtable"
)

// Options control a single builder run.
type Options struct {
	// DryRun plans and reports without writing any files.
	DryRun bool

	// Variant restricts the run to a single variant. Empty means all.
	Variant string

	// Manifest overrides the client file set. Nil means DefaultManifest.
	Manifest []FileSpec
}

// Builder performs one full synchronization pass: per variant, it
// reconciles every manifest file, writes the output tables, rewrites the
// translator patch, copies static assets, and records a run report.
type Builder struct {
	fs   afero.Fs
	cfg  Config
	log  *zap.Logger
	opts Options
}

// NewBuilder creates a builder over the given filesystem.
func NewBuilder(fsys afero.Fs, cfg Config, log *zap.Logger, opts Options) *Builder {
	if opts.Manifest == nil {
		opts.Manifest = DefaultManifest()
	}
	return &Builder{fs: fsys, cfg: cfg, log: log, opts: opts}
}

// Run executes the full pass and returns the run report. Any parse or
// write failure aborts the run; a failed run never leaves a shippable
// half-pack because the output tree is recreated from scratch first.
func (b *Builder) Run() (*RunReport, error) {
	variants := b.cfg.VariantNames()
	if b.opts.Variant != "" {
		found := false
		for _, name := range variants {
			if name == b.opts.Variant {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown variant %q (configured: %v)", b.opts.Variant, variants)
		}
		variants = []string{b.opts.Variant}
	}

	report := NewRunReport(b.opts.DryRun)
	b.log.Info("Starting synchronization",
		zap.String("run_id", report.RunID),
		zap.Strings("variants", variants),
		zap.Bool("dry_run", b.opts.DryRun),
	)

	if !b.opts.DryRun {
		if err := b.fs.RemoveAll(b.cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("reset output directory: %w", err)
		}
		if err := b.fs.MkdirAll(b.cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	for i, name := range variants {
		// Variants share the base patch; only the first build rewrites it
		// so later variants never see mid-run churn.
		vr, err := b.buildVariant(name, i == 0)
		if err != nil {
			return nil, err
		}
		report.Variants = append(report.Variants, *vr)
	}

	report.FinishedAt = time.Now().UTC()

	if !b.opts.DryRun {
		path := filepath.Join(b.cfg.OutputDir, ReportFileName)
		if err := report.WriteJSON(b.fs, path); err != nil {
			return nil, fmt.Errorf("write run report: %w", err)
		}
	}

	return report, nil
}

func (b *Builder) buildVariant(name string, updatePatch bool) (*VariantReport, error) {
	log := b.log.With(zap.String("variant", name))
	log.Info("Building variant")

	outDir := filepath.Join(b.cfg.OutputDir, name)
	overlayDir := filepath.Join(b.cfg.PatchDir, "variants", name)

	vr := &VariantReport{Name: name}
	for _, spec := range b.opts.Manifest {
		fr, err := b.syncFile(log, spec, overlayDir, outDir, updatePatch)
		if err != nil {
			return nil, err
		}
		vr.Files = append(vr.Files, *fr)
		vr.Summary.Add(fr.Summary)
	}

	if !b.opts.DryRun {
		if err := b.copyAssets(outDir, []string{b.cfg.PatchDir, overlayDir}); err != nil {
			return nil, err
		}
	}

	log.Info("Variant complete",
		zap.Int("total", vr.Summary.Total),
		zap.Int("translated", vr.Summary.Translated),
		zap.Int("untranslated", vr.Summary.Untranslated),
		zap.Int("rejected", vr.Summary.Rejected),
		zap.Int("stale", vr.Summary.Stale),
	)
	return vr, nil
}

func (b *Builder) syncFile(log *zap.Logger, spec FileSpec, overlayDir, outDir string, updatePatch bool) (*FileReport, error) {
	l := logger.WithFile(log, spec.Path)

	source, err := stringtable.Load(b.fs, ResolvePath(b.fs, b.cfg.ClientDir, spec.Path))
	if err != nil {
		return nil, err
	}
	reference, err := stringtable.Load(b.fs, ResolvePath(b.fs, b.cfg.ReferenceDir, spec.Path))
	if err != nil {
		return nil, err
	}
	patchPath := ResolvePath(b.fs, b.cfg.PatchDir, spec.Path)
	patch, err := stringtable.LoadOptional(b.fs, patchPath, spec.Root)
	if err != nil {
		return nil, err
	}
	overlay, err := stringtable.LoadOptional(b.fs, ResolvePath(b.fs, overlayDir, spec.Path), spec.Root)
	if err != nil {
		return nil, err
	}

	// Effective dictionary: reference, overridden by the translator
	// patch, overridden by the variant overlay.
	dictionary := stringtable.NewTable(spec.Root)
	dictionary.Merge(reference)
	dictionary.Merge(patch)
	dictionary.Merge(overlay)

	plan := reconcile.Reconcile(source, dictionary, reconcile.Options{
		RepairMetadata:   true,
		CheckExpressions: true,
	})

	for _, action := range plan.Actions {
		logAction(l, action)
	}

	if !b.opts.DryRun {
		if err := stringtable.Write(b.fs, filepath.Join(outDir, spec.Path), plan.Output); err != nil {
			return nil, err
		}
		if updatePatch {
			if err := b.updatePatchFile(patchPath, patch, plan); err != nil {
				return nil, err
			}
		}
	}

	return &FileReport{
		Path:         spec.Path,
		Summary:      plan.Summary,
		Untranslated: plan.Untranslated,
		Rejected:     plan.Rejected,
		Stale:        plan.Stale,
	}, nil
}

// updatePatchFile rewrites the translator patch so it reflects exactly
// what still needs attention: pending entries are merged in, stale keys
// dropped. The file is only rewritten when something changed.
func (b *Builder) updatePatchFile(patchPath string, patch *stringtable.Table, plan *reconcile.Plan) error {
	changed := plan.Pending.Len() > 0
	for _, id := range plan.Stale {
		if _, ok := patch.Entries[id]; ok {
			delete(patch.Entries, id)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	patch.Merge(plan.Pending)
	if patch.Len() == 0 {
		return nil
	}
	return stringtable.Write(b.fs, patchPath, patch)
}

// logAction routes one plan action to the right log level. Stale entries
// and warnings need a human eye, so they log as warnings.
func logAction(l *zap.Logger, a reconcile.Action) {
	fields := []zap.Field{
		zap.Int("id", a.ID),
		zap.String("name", a.Name),
		zap.String("reason", a.Reason),
	}
	if a.Field != "" {
		fields = append(fields, zap.String("field", a.Field))
	}

	switch a.Type {
	case reconcile.ActionDropStale:
		l.Warn("Stale dictionary entry", fields...)
	case reconcile.ActionWarn:
		l.Warn("Translation needs review", fields...)
	case reconcile.ActionRepair:
		l.Info("Repaired metadata field", fields...)
	case reconcile.ActionFallback:
		l.Info("Missing translation", fields...)
	}
}
