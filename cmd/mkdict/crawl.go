package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/mkdict"
	"github.com/fwojciec/mkdict/crawl"
	mkslog "github.com/fwojciec/mkdict/slog"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	letters := mkdict.Alphabet
	if len(c.Letters) > 0 {
		var err error
		if letters, err = mkdict.ParseLetters(c.Letters); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mkdict.ErrorMessage(err))
			return err
		}
	}

	renderer, err := deps.NewRenderer(RendererConfig{
		Timeout:  c.Timeout,
		MaxPages: c.MaxPages,
		Browser:  c.Browser,
	})
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed, or set MKDICT_BROWSER")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer renderer.Close()

	crawler := &crawl.Crawler{
		Renderer:    mkslog.NewLoggingRenderer(renderer, deps.Logger),
		Extractor:   deps.Extractor,
		Checkpoints: deps.Checkpoints,
		BaseURL:     c.BaseURL,
		Alphabet:    letters,
		Logger:      deps.Logger,
	}

	result, err := crawler.Run(deps.Ctx, func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressResumed:
			fmt.Fprintf(deps.Stdout, "%s: resumed %d from checkpoint\n", e.Stage, e.Completed)
		case crawl.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "%s: %d done\n", e.Stage, e.Completed)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mkdict.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d words (%d ranges, %d word URIs, ~%d repeated URIs)\n",
		len(result.State.Words), len(result.State.RangeURIs), len(result.State.WordURIs), result.Duplicates)

	if c.Print {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.State.Words)
	}
	return nil
}
