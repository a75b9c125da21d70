package crawl

import (
	"context"

	"github.com/fwojciec/mkdict"
)

// Ranges renders the listing page of each letter, in order, and returns all
// range URIs concatenated in document order.
func (c *Crawler) Ranges(ctx context.Context, letters []mkdict.Letter, progress ProgressFunc) ([]string, error) {
	return foldURIs(ctx, c, StageRanges, letters, progress, func(l mkdict.Letter) (string, []string, error) {
		url := mkdict.LetterURL(c.baseURL(), l)
		html, err := c.Renderer.Render(ctx, url, mkdict.RangesReadySelector)
		if err != nil {
			return url, nil, err
		}
		uris, err := c.Extractor.ExtractRangeURIs(html)
		return url, uris, err
	})
}

// WordURIs renders each range page, in order, and returns all word URIs
// concatenated in document order.
func (c *Crawler) WordURIs(ctx context.Context, ranges []string, progress ProgressFunc) ([]string, error) {
	return foldURIs(ctx, c, StageWordURIs, ranges, progress, func(rangeURI string) (string, []string, error) {
		url := mkdict.RangeURL(c.baseURL(), rangeURI)
		html, err := c.Renderer.Render(ctx, url, mkdict.WordsReadySelector)
		if err != nil {
			return url, nil, err
		}
		uris, err := c.Extractor.ExtractWordURIs(html)
		return url, uris, err
	})
}

// Words renders each word page, in order, and returns one record per word URI.
func (c *Crawler) Words(ctx context.Context, wordURIs []string, progress ProgressFunc) ([]*mkdict.WordRecord, error) {
	log := c.logger().With("stage", StageWords)
	total := len(wordURIs)
	notify(progress, ProgressEvent{Type: ProgressStarted, Stage: StageWords, Total: total})

	words := make([]*mkdict.WordRecord, 0, total)
	for i, uri := range wordURIs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		url := mkdict.WordURL(c.baseURL(), mkdict.EncodeURI(uri))
		html, err := c.Renderer.Render(ctx, url, mkdict.WordReadySelector)
		if err != nil {
			log.Error("render failed", "url", url, "err", err)
			return nil, err
		}
		word, err := c.Extractor.ExtractWord(html)
		if err != nil {
			log.Error("extraction failed", "url", url, "err", err)
			return nil, err
		}
		words = append(words, word)

		log.Info("parsed word", "word", word.Word, "definitions", len(word.Definitions))
		notify(progress, ProgressEvent{Type: ProgressUnit, Stage: StageWords, Completed: i + 1, Total: total, Unit: uri})
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Stage: StageWords, Completed: total, Total: total})
	return words, nil
}

// foldURIs applies visit to every input in order and concatenates the
// returned URIs. It stops at the first error.
func foldURIs[T ~string](ctx context.Context, c *Crawler, stage Stage, inputs []T, progress ProgressFunc, visit func(T) (string, []string, error)) ([]string, error) {
	log := c.logger().With("stage", stage)
	total := len(inputs)
	notify(progress, ProgressEvent{Type: ProgressStarted, Stage: stage, Total: total})

	out := []string{}
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		url, uris, err := visit(in)
		if err != nil {
			log.Error("stage unit failed", "url", url, "err", err)
			return nil, err
		}
		out = append(out, uris...)

		log.Info("parsed URIs", "unit", string(in), "count", len(uris))
		notify(progress, ProgressEvent{Type: ProgressUnit, Stage: stage, Completed: i + 1, Total: total, Unit: string(in)})
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Stage: stage, Completed: total, Total: total})
	return out, nil
}
