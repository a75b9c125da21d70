package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/mkdict"
	"github.com/fwojciec/mkdict/etree"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var words []*mkdict.WordRecord
	if err := deps.Checkpoints.ReadJSON(deps.Ctx, mkdict.CheckpointWords, &words); err != nil {
		return c.report(deps, err)
	}
	if len(words) == 0 {
		return c.report(deps, mkdict.Errorf(mkdict.ENOTFOUND, "no crawled words found. Run 'mkdict crawl' first"))
	}

	if c.Output == "" || c.Output == "-" {
		return c.report(deps, c.export(deps.Stdout, words))
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return c.report(deps, mkdict.WrapError(mkdict.EPERSISTENCE, err, "create %s", c.Output))
	}
	if err := c.export(f, words); err != nil {
		f.Close()
		return c.report(deps, err)
	}
	if err := f.Close(); err != nil {
		return c.report(deps, mkdict.WrapError(mkdict.EPERSISTENCE, err, "write %s", c.Output))
	}
	return nil
}

// report prints err the way every command reports failures and returns it.
func (c *ExportCmd) report(deps *Dependencies, err error) error {
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mkdict.ErrorMessage(err))
	}
	return err
}

func (c *ExportCmd) export(w io.Writer, words []*mkdict.WordRecord) error {
	switch c.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(words)
	default:
		exporter := etree.NewExporter(c.BaseURL)
		if c.Title != "" {
			exporter.Title = c.Title
		}
		return exporter.Export(w, words)
	}
}
