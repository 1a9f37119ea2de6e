// Package ioload implements the Loader interface. It reads vendor
// documents, parses them and writes their detail groups into the
// database, one transaction per document.
package ioload

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/datablock/pkg/config"
	"github.com/gnames/datablock/pkg/document"
	"github.com/gnames/datablock/pkg/lifecycle"
	"github.com/gnames/datablock/pkg/parser"
	"github.com/gnames/datablock/pkg/schema"
	"github.com/gnames/datablock/pkg/sources"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// chunkFactor limits how many parsed documents per worker wait in
// memory for the writer.
const chunkFactor = 4

type loader struct {
	cfg     *config.Config
	db      *gorm.DB
	reader  sources.Reader
	metrics *metrics
}

// prepared is a document after the parallel read and parse stage.
type prepared struct {
	input       sources.Input
	doc         document.Document
	gens        []parser.Generation
	fingerprint string
	size        int64
	err         error
}

// New creates a Loader that writes to db and reads inputs with r.
func New(cfg *config.Config, db *gorm.DB, r sources.Reader) lifecycle.Loader {
	return &loader{cfg: cfg, db: db, reader: r, metrics: newMetrics()}
}

// Load implements lifecycle.Loader.
func (l *loader) Load(
	ctx context.Context,
	inputs []sources.Input,
) (*lifecycle.Report, error) {
	start := time.Now()
	res := &lifecycle.Report{RunID: uuid.NewString()}

	inputs, err := l.reader.Expand(ctx, inputs)
	if err != nil {
		return nil, err
	}
	slog.Info("Starting load", "run_id", res.RunID, "documents", len(inputs))

	run := schema.LoadRun{ID: res.RunID, StartedAt: start, FilesTotal: len(inputs)}
	if err = l.db.WithContext(ctx).Create(&run).Error; err != nil {
		return nil, ProvenanceError(run.TableName(), err)
	}

	var bar *pb.ProgressBar
	if l.cfg.WithProgress {
		bar = pb.Full.Start(len(inputs))
		bar.Set(pb.CleanOnFinish, true)
	}

	err = l.process(ctx, inputs, res, bar)
	if bar != nil {
		bar.Finish()
	}
	res.Duration = time.Since(start)

	if ferr := l.finish(run, res); ferr != nil {
		slog.Error("Cannot finish load run", "run_id", res.RunID, "error", ferr)
	}
	if err != nil {
		return res, err
	}

	if res.Failed > 0 && res.Succeeded == 0 && res.Skipped == 0 {
		return res, AllFilesFailedError(res.Failed)
	}
	return res, nil
}

// process reads and parses inputs in chunks concurrently, and writes
// every chunk sequentially in input order.
func (l *loader) process(
	ctx context.Context,
	inputs []sources.Input,
	report *lifecycle.Report,
	bar *pb.ProgressBar,
) error {
	jobs := max(l.cfg.JobsNumber, 1)
	chunk := jobs * chunkFactor

	for i := 0; i < len(inputs); i += chunk {
		end := min(i+chunk, len(inputs))
		docs, err := l.prepare(ctx, inputs[i:end], jobs)
		if err != nil {
			return err
		}

		for _, p := range docs {
			if err := ctx.Err(); err != nil {
				return CancelledError(err)
			}
			fr := l.write(ctx, report.RunID, p)
			report.Add(fr)
			l.metrics.file(fr.Status)
			if bar != nil {
				bar.Increment()
			}
			if err := ctx.Err(); err != nil {
				return CancelledError(err)
			}
		}
	}
	return nil
}

func (l *loader) prepare(
	ctx context.Context,
	inputs []sources.Input,
	jobs int,
) ([]prepared, error) {
	res := make([]prepared, len(inputs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res[i] = l.prepareOne(gCtx, in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, CancelledError(err)
	}
	return res, nil
}

func (l *loader) prepareOne(ctx context.Context, in sources.Input) prepared {
	res := prepared{input: in}

	data, err := l.reader.Read(ctx, in)
	if err != nil {
		res.err = err
		return res
	}
	res.size = int64(len(data))
	res.fingerprint = gnuuid.New(string(data)).String()

	res.doc, res.err = document.New(data, l.hint(in))
	if res.err != nil {
		return res
	}

	res.gens, res.err = parser.Parse(res.doc)
	return res
}

// hint returns the category hint of an input: its manifest or command
// line category, then the configured default, then the file name.
func (l *loader) hint(in sources.Input) string {
	if in.Category != "" {
		return in.Category
	}
	if l.cfg.Load.Category != "" {
		return l.cfg.Load.Category
	}
	return filepath.Base(in.Name)
}

func (l *loader) write(
	ctx context.Context,
	runID string,
	p prepared,
) lifecycle.FileResult {
	res := lifecycle.FileResult{Name: p.input.Name}
	if p.err != nil {
		return l.failed(res, p.err)
	}

	key := p.doc.Key()
	cat := string(p.doc.Category())
	res.DUNS = key.DUNS
	res.Category = cat

	var skipped bool
	rows := make(map[schema.Group]int)
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if l.cfg.Load.SkipUnchanged {
			var err error
			skipped, err = unchanged(tx, key.DUNS, cat, p.fingerprint)
			if err != nil || skipped {
				return err
			}
		}

		company, err := Resolve(tx, key)
		if err != nil {
			return err
		}

		for _, gen := range p.gens {
			n, err := Replace(tx, company.ID, gen)
			if err != nil {
				return err
			}
			rows[gen.Group] += n
			res.Rows += n
		}

		sd := schema.SourceDocument{
			LoadRunID:   runID,
			CompanyID:   company.ID,
			Category:    cat,
			InputName:   p.input.Name,
			Fingerprint: p.fingerprint,
			ByteSize:    p.size,
			Rows:        res.Rows,
			LoadedAt:    time.Now(),
		}
		if err = tx.Create(&sd).Error; err != nil {
			return ProvenanceError(sd.TableName(), err)
		}
		return nil
	})

	if err != nil {
		var gnErr *gn.Error
		if !errors.As(err, &gnErr) {
			err = TransactionError(p.input.Name, err)
		}
		res.Rows = 0
		return l.failed(res, err)
	}

	if skipped {
		res.Status = lifecycle.StatusSkipped
		slog.Info("Document unchanged, skipped",
			"name", res.Name, "duns", res.DUNS, "category", cat)
		return res
	}

	l.metrics.addRows(rows)
	res.Status = lifecycle.StatusLoaded
	slog.Debug("Document loaded",
		"name", res.Name, "duns", res.DUNS, "category", cat, "rows", res.Rows)
	return res
}

func (l *loader) failed(
	res lifecycle.FileResult,
	err error,
) lifecycle.FileResult {
	res.Status = lifecycle.StatusFailed
	res.Err = err
	slog.Error("Cannot load document", "name", res.Name, "error", err)
	return res
}

// unchanged checks if the last document of the same company and
// category has the same fingerprint.
func unchanged(tx *gorm.DB, duns, cat, fingerprint string) (bool, error) {
	var last schema.SourceDocument
	err := tx.Joins("JOIN companies ON companies.id = source_documents.company_id").
		Where("companies.duns = ? AND source_documents.category = ?", duns, cat).
		Order("source_documents.id DESC").
		Limit(1).
		Find(&last).Error
	if err != nil {
		return false, ProvenanceError(last.TableName(), err)
	}
	return last.ID != 0 && last.Fingerprint == fingerprint, nil
}

// finish records run totals, metrics and prints the summary.
func (l *loader) finish(run schema.LoadRun, r *lifecycle.Report) error {
	finished := time.Now()
	err := l.db.Model(&schema.LoadRun{}).Where("id = ?", run.ID).
		Updates(map[string]any{
			"finished_at":     finished,
			"files_succeeded": r.Succeeded,
			"files_failed":    r.Failed,
			"files_skipped":   r.Skipped,
			"rows_inserted":   r.Rows,
		}).Error
	if err != nil {
		return ProvenanceError(run.TableName(), err)
	}

	l.metrics.finish(r)
	if path := l.cfg.Load.MetricsFile; path != "" {
		if err = l.metrics.write(path); err != nil {
			return err
		}
	}

	dur := gnfmt.TimeString(r.Duration.Seconds())
	slog.Info("Load complete",
		"run_id", r.RunID,
		"loaded", r.Succeeded,
		"skipped", r.Skipped,
		"failed", r.Failed,
		"rows", r.Rows,
		"duration", dur,
	)
	gn.Info(`Load complete
Documents loaded: %s, skipped: %s, failed: %s, total: %s.
Rows inserted: <em>%s</em>. Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(r.Succeeded)),
		humanize.Comma(int64(r.Skipped)),
		humanize.Comma(int64(r.Failed)),
		humanize.Comma(int64(len(r.Files))),
		humanize.Comma(int64(r.Rows)),
		dur,
	)

	for _, f := range r.Errors() {
		gn.Warn("<em>%s</em>: %s", f.Name, f.Err)
	}
	if r.Failed > 0 {
		slog.Warn("Some documents failed to load",
			"failed", r.Failed, "succeeded", r.Succeeded)
	}
	return nil
}
