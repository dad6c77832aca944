// Package build implements BackgroundBuilder (spec.md §4.5): the five-step
// pipeline that turns a DocumentSource into a persisted ConceptIndex.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openesa/esacore/internal/corpus"
	"github.com/openesa/esacore/internal/esaerr"
	"github.com/openesa/esacore/internal/store"
	"github.com/openesa/esacore/internal/tokenize"
	"github.com/openesa/esacore/internal/vector"
)

// Builder orchestrates the build pipeline against one Store. It is not
// safe for concurrent use — call Run once per Builder (spec.md §5: the
// core is single-threaded and synchronous across build and query phases;
// the only internal parallelism is the bounded per-term fan-out in Step 5).
type Builder struct {
	cfg       *Config
	store     *store.Store
	labelPath string
	logger    *slog.Logger
}

// New constructs a Builder. labelPath is where the LabelMap is checkpointed
// and finally persisted.
func New(cfg *Config, s *store.Store, labelPath string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, store: s, labelPath: labelPath, logger: logger}
}

// Run executes all five steps of spec.md §4.5 against source, returning
// the filter chain fingerprint recorded into the store for later query
// Sessions to validate against. Any I/O error from the backing store
// aborts the build; per-document ingest errors are logged and skipped.
func (b *Builder) Run(ctx context.Context, source corpus.Source) (string, error) {
	runID := uuid.New().String()
	log := b.logger.With(slog.String("build_id", runID))

	chain, err := b.cfg.BuildFilterChain()
	if err != nil {
		return "", err
	}

	log.Info("build: step 1 — schema preparation")
	if err := b.timedStep("schema_prepare", b.store.PrepareSchema); err != nil {
		return "", err
	}

	log.Info("build: step 2 — ingest")
	wordMap := tokenize.NewWordMap()
	pipeline := tokenize.NewBuildPipeline(chain, wordMap)
	if err := b.ingest(ctx, log, source, pipeline); err != nil {
		return "", err
	}
	wordMap.Seal()
	if err := b.store.SaveWordMap(ctx, wordMap); err != nil {
		return "", err
	}

	log.Info("build: step 3 — idf")
	var idf *store.IDFTable
	err = b.timedStep("idf", func() error {
		var computeErr error
		idf, computeErr = store.ComputeIDFTable(ctx, b.store)
		return computeErr
	})
	if err != nil {
		return "", err
	}
	if err := b.store.SaveIDFTable(ctx, idf); err != nil {
		return "", err
	}

	log.Info("build: step 5 — concept-vector emission", slog.Int("terms", idf.Len()))
	if err := b.timedStep("vector_emission", func() error {
		return b.emitConceptVectors(ctx, idf)
	}); err != nil {
		return "", err
	}

	fingerprint := chain.Fingerprint()
	if err := b.store.SaveFilterChainFingerprint(ctx, fingerprint); err != nil {
		return "", err
	}
	log.Info("build: complete", slog.String("filter_chain_fingerprint", fingerprint))
	return fingerprint, nil
}

func (b *Builder) timedStep(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	buildStepDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	return err
}

// ingest implements Step 2: read documents until the source is exhausted,
// compute per-document term frequencies, weight them as tf = 1 + ln(f), and
// insert into the TF store. The LabelMap is checkpointed every
// CheckpointEvery documents so a crash mid-ingest doesn't lose it entirely.
func (b *Builder) ingest(ctx context.Context, log *slog.Logger, source corpus.Source, pipeline *tokenize.Pipeline) error {
	labels := store.NewLabelMap()
	progress := newProgressReporter(log, "ingest", 10*time.Second)
	defer progress.Done()

	n := 0
	for {
		doc, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("ingest: %w: %w", esaerr.ErrSourceDecode, err)
		}

		counts := pipeline.TermFrequencies(doc.Body)
		weighted := make(map[uint32]float32, len(counts))
		for termID, freq := range counts {
			weighted[termID] = float32(1.0 + math.Log(float64(freq)))
		}
		if err := b.store.InsertDocument(ctx, doc.DocID, weighted); err != nil {
			return err
		}
		labels.Set(doc.DocID, doc.Title)
		docsIngestedTotal.WithLabelValues("ok").Inc()
		termsInternedTotal.Set(float64(pipeline.WordMap().Len()))
		progress.Tick()

		n++
		if n%b.cfg.CheckpointEvery == 0 {
			if err := store.SaveLabelMap(b.labelPath, labels); err != nil {
				return err
			}
		}
	}
	return store.SaveLabelMap(b.labelPath, labels)
}

// emitConceptVectors implements Step 5: a single sequential pass over
// ScanByTerm groups rows by term_id (already guaranteed by scan order),
// dispatching each complete group to a bounded worker pool for
// normalisation, truncation, and persistence — the only place this core
// runs work concurrently (spec.md §5's allowance for "independent per-term
// vector emission").
func (b *Builder) emitConceptVectors(ctx context.Context, idf *store.IDFTable) error {
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, b.cfg.VectorEmissionConcurrency)

	dispatch := func(termID uint32, pairs []vector.Pair) {
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			return b.emitOneTerm(gctx, idf, termID, pairs)
		})
	}

	var (
		haveCurrent bool
		currentTerm uint32
		group       []vector.Pair
	)
	err := b.store.ScanByTerm(ctx, b.cfg.MinFreq, func(termID, docID uint32, weight float32) error {
		if !haveCurrent || termID != currentTerm {
			if err := ctx.Err(); err != nil {
				return err
			}
			if haveCurrent {
				dispatch(currentTerm, group)
			}
			haveCurrent = true
			currentTerm = termID
			group = nil
		}
		group = append(group, vector.Pair{DocID: docID, Weight: weight})
		return nil
	})
	if err != nil {
		_ = g.Wait()
		return err
	}
	if haveCurrent {
		dispatch(currentTerm, group)
	}
	return g.Wait()
}

func (b *Builder) emitOneTerm(ctx context.Context, idf *store.IDFTable, termID uint32, pairs []vector.Pair) error {
	weight, _ := idf.Get(termID)
	for i := range pairs {
		pairs[i].Weight *= weight
	}
	pairs = vector.Normalize(pairs, b.cfg.NormalizationMode())
	pairs = vector.Truncate(pairs, b.cfg.WindowSize, b.cfg.WindowThresh)
	if err := b.store.SaveConceptVector(ctx, termID, vector.Encode(pairs)); err != nil {
		return err
	}
	conceptVectorsEmittedTotal.Inc()
	return nil
}
