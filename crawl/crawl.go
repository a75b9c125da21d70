// Package crawl drives the hierarchical dictionary crawl: letters to range
// URIs, ranges to word URIs, and word URIs to word records.
package crawl

import (
	"context"
	"log/slog"

	"github.com/fwojciec/mkdict"
	"github.com/fwojciec/mkdict/bloom"
	"github.com/google/uuid"
)

// Crawler orchestrates the three crawl stages.
//
// Stages run strictly one after another and units within a stage run one at
// a time in input order, because Renderer is a single stateful browser
// session. The first failing unit aborts the whole crawl.
type Crawler struct {
	Renderer    mkdict.Renderer
	Extractor   mkdict.Extractor
	Checkpoints mkdict.CheckpointStore

	// BaseURL defaults to mkdict.DefaultBaseURL.
	BaseURL string
	// Alphabet defaults to mkdict.Alphabet.
	Alphabet []mkdict.Letter
	// Logger defaults to discarding all output.
	Logger *slog.Logger
}

// Result holds the outcome of a full crawl.
type Result struct {
	State mkdict.CrawlState

	// RangesResumed and WordURIsResumed report whether a stage was loaded
	// from its checkpoint instead of being crawled.
	RangesResumed   bool
	WordURIsResumed bool

	// Duplicates approximates how many range and word URIs repeat an
	// earlier one. Repeats are kept in State.
	Duplicates int
}

// Run crawls every stage, writing a checkpoint after each one, and writes
// the final word list. A non-empty range or word URI checkpoint is trusted
// as a completed stage and that stage is skipped. Word records are always
// crawled fresh.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	c = c.withLogger(c.logger().With("run", uuid.NewString()))
	result := &Result{}

	ranges, resumed, err := c.resumeOrCrawl(ctx, StageRanges, mkdict.CheckpointRangeURIs, progress, func() ([]string, error) {
		return c.Ranges(ctx, c.alphabet(), progress)
	})
	if err != nil {
		return nil, err
	}
	result.State.RangeURIs, result.RangesResumed = ranges, resumed

	wordURIs, resumed, err := c.resumeOrCrawl(ctx, StageWordURIs, mkdict.CheckpointWordURIs, progress, func() ([]string, error) {
		return c.WordURIs(ctx, ranges, progress)
	})
	if err != nil {
		return nil, err
	}
	result.State.WordURIs, result.WordURIsResumed = wordURIs, resumed

	words, err := c.Words(ctx, wordURIs, progress)
	if err != nil {
		return nil, err
	}
	if err := c.Checkpoints.WriteJSON(ctx, mkdict.CheckpointWords, words); err != nil {
		return nil, err
	}
	result.State.Words = words

	result.Duplicates = countRepeats(ranges, wordURIs)
	c.logger().Info("crawl finished",
		"ranges", len(ranges),
		"word_uris", len(wordURIs),
		"words", len(words),
		"duplicates", result.Duplicates,
	)
	return result, nil
}

// resumeOrCrawl returns the named checkpoint if it is non-empty. Otherwise it
// runs the stage and checkpoints its full output. A failed checkpoint read is
// returned as an error, never taken to mean the checkpoint is absent.
func (c *Crawler) resumeOrCrawl(ctx context.Context, stage Stage, name string, progress ProgressFunc, run func() ([]string, error)) ([]string, bool, error) {
	var uris []string
	if err := c.Checkpoints.ReadJSON(ctx, name, &uris); err != nil {
		return nil, false, err
	}
	if len(uris) > 0 {
		c.logger().Info("stage resumed from checkpoint", "stage", stage, "checkpoint", name, "count", len(uris))
		notify(progress, ProgressEvent{Type: ProgressResumed, Stage: stage, Completed: len(uris), Total: len(uris)})
		return uris, true, nil
	}

	uris, err := run()
	if err != nil {
		return nil, false, err
	}
	if err := c.Checkpoints.WriteJSON(ctx, name, uris); err != nil {
		return nil, false, err
	}
	return uris, false, nil
}

func (c *Crawler) baseURL() string {
	if c.BaseURL == "" {
		return mkdict.DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Crawler) alphabet() []mkdict.Letter {
	if len(c.Alphabet) == 0 {
		return mkdict.Alphabet
	}
	return c.Alphabet
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// withLogger returns a shallow copy of c that logs to l.
func (c *Crawler) withLogger(l *slog.Logger) *Crawler {
	other := *c
	other.Logger = l
	return &other
}

// Bloom filter sizing for duplicate reporting.
const (
	repeatFalsePositiveRate = 0.001
	minRepeatCapacity       = 1024
)

// countRepeats approximates how many URIs across the given lists repeat an
// earlier one.
func countRepeats(lists ...[]string) int {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	f := bloom.NewFilter(uint(max(n, minRepeatCapacity)), repeatFalsePositiveRate)

	repeats := 0
	for _, l := range lists {
		for _, uri := range l {
			if f.Seen(uri) {
				repeats++
			}
		}
	}
	return repeats
}
