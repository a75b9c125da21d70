package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mkdict"
	main "github.com/fwojciec/mkdict/cmd/mkdict"
	"github.com/fwojciec/mkdict/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "http://dict.test"

// sitePages is a rendered copy of a one-letter dictionary.
var sitePages = map[string]string{
	testBase + "/letter/а": `<select id="ranges"><option value="/range/1">а - чест</option></select>`,
	testBase + "/range/1":  `<select id="lexems"><option value="а/сврз">сврз</option><option value="а/чест">чест</option></select>`,
	testBase + "/#" + mkdict.EncodeURI("а/сврз"): `<div id="main_content">
		<div class="lexem"><span>сврз</span></div>
		<div class="grammar"><i>сврзник</i></div>
		<div class="definition">
			<div class="meaning">Поврзува.</div>
			<div class="translation eng"><a>and</a></div>
			<div class="semem-links"><a>и</a></div>
		</div></div>`,
	testBase + "/#" + mkdict.EncodeURI("а/чест"): `<div id="main_content">
		<div class="lexem"><span>чест</span></div>
		<div class="grammar"><i>ж.</i></div>
		<div class="flexion"><i>чести</i></div>
		<div class="definition"><div class="meaning">Углед.</div></div></div>`,
}

// newTestMain returns a Main whose renderer serves sitePages and records
// whether it was closed.
func newTestMain(closed *bool) *main.Main {
	m := main.NewMain()
	m.NewRenderer = func(main.RendererConfig) (mkdict.Renderer, error) {
		return &mock.Renderer{
			RenderFn: func(_ context.Context, url, _ string) (string, error) {
				html, ok := sitePages[url]
				if !ok {
					return "", mkdict.Errorf(mkdict.ENAVIGATION, "no page at %s", url)
				}
				return html, nil
			},
			CloseFn: func() error {
				if closed != nil {
					*closed = true
				}
				return nil
			},
		}, nil
	}
	return m
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "mkdict")
	assert.Contains(t, stdout.String(), "crawl")
	assert.Contains(t, stdout.String(), "export")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "mkdict")
}

func TestMain_Run_UnknownStore(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--store", "s3", "export"}, &stdout, &stderr)

	assert.Error(t, err)
}

// Story: Crawling from the command line

func TestMain_Run_CrawlWritesCheckpointsAndOutput(t *testing.T) {
	t.Parallel()

	// Given an empty output directory
	dir := t.TempDir()
	var closed bool
	m := newTestMain(&closed)
	var stdout, stderr bytes.Buffer

	// When I crawl a single letter
	err := m.Run(context.Background(), []string{
		"--dir", dir, "crawl", "--base-url", testBase, "--letters", "а",
	}, &stdout, &stderr)

	// Then the crawl succeeds and the browser is released
	require.NoError(t, err, stderr.String())
	assert.True(t, closed)
	assert.Contains(t, stdout.String(), "Saved 2 words")

	// And every artifact is on disk
	var ranges, wordURIs []string
	readJSONFile(t, filepath.Join(dir, "wordRangeURIs.json"), &ranges)
	readJSONFile(t, filepath.Join(dir, "wordURIs.json"), &wordURIs)
	assert.Equal(t, []string{"/range/1"}, ranges)
	assert.Equal(t, []string{"а/сврз", "а/чест"}, wordURIs)

	data, err := os.ReadFile(filepath.Join(dir, "allWordsData.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"word":"сврз","grammar":"сврзник","definitions":[{"meaning":"Поврзува.","english":"and","synonyms":["и"]}]},
		{"word":"чест","flexion":"чести","grammar":"ж.","definitions":[{"meaning":"Углед."}]}
	]`, string(data))
}

func TestMain_Run_CrawlWithSQLiteStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := newTestMain(nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"--dir", dir, "--store", "sqlite", "crawl", "--base-url", testBase, "--letters", "а", "--print",
	}, &stdout, &stderr)

	require.NoError(t, err, stderr.String())
	assert.FileExists(t, filepath.Join(dir, "mkdict.db"))
	assert.Contains(t, stdout.String(), `"word": "чест"`)

	// A second run resumes both URI stages from the database
	stdout.Reset()
	m = newTestMain(nil)
	err = m.Run(context.Background(), []string{
		"--dir", dir, "--store", "sqlite", "crawl", "--base-url", testBase, "--letters", "а",
	}, &stdout, &stderr)

	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "ranges: resumed 1 from checkpoint")
	assert.Contains(t, stdout.String(), "word_uris: resumed 2 from checkpoint")
}

func TestMain_Run_CrawlRejectsUnknownLetter(t *testing.T) {
	t.Parallel()

	var started bool
	m := main.NewMain()
	m.NewRenderer = func(main.RendererConfig) (mkdict.Renderer, error) {
		started = true
		return nil, errors.New("should not start")
	}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--dir", t.TempDir(), "crawl", "--letters", "q"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, mkdict.EINVALID, mkdict.ErrorCode(err))
	assert.False(t, started)
}

func TestMain_Run_CrawlFailureReleasesBrowser(t *testing.T) {
	t.Parallel()

	var closed bool
	m := newTestMain(&closed)
	var stdout, stderr bytes.Buffer

	// The letter б has no page, so rendering fails.
	err := m.Run(context.Background(), []string{
		"--dir", t.TempDir(), "crawl", "--base-url", testBase, "--letters", "а,б",
	}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, mkdict.ENAVIGATION, mkdict.ErrorCode(err))
	assert.True(t, closed)
	assert.Contains(t, stderr.String(), "error: no page at")
}

func TestMain_Run_CrawlBrowserStartFailure(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.NewRenderer = func(main.RendererConfig) (mkdict.Renderer, error) {
		return nil, errors.New("chrome not found")
	}
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--dir", t.TempDir(), "crawl"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chrome not found")
	assert.Contains(t, stderr.String(), "Hint")
}

func TestMain_Run_CrawlPassesRendererConfig(t *testing.T) {
	t.Parallel()

	var cfg main.RendererConfig
	m := main.NewMain()
	m.NewRenderer = func(c main.RendererConfig) (mkdict.Renderer, error) {
		cfg = c
		return nil, errors.New("stop here")
	}
	var stdout, stderr bytes.Buffer

	_ = m.Run(context.Background(), []string{
		"--dir", t.TempDir(), "crawl", "--timeout", "5s", "--max-pages", "10", "--browser", "/usr/bin/chromium",
	}, &stdout, &stderr)

	assert.Equal(t, "5s", cfg.Timeout.String())
	assert.Equal(t, 10, cfg.MaxPages)
	assert.Equal(t, "/usr/bin/chromium", cfg.Browser)
}

// Story: Exporting

func TestMain_Run_ExportXDXF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWords(t, dir)
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"--dir", dir, "export"}, &stdout, &stderr)

	require.NoError(t, err, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, `<xdxf lang_from="MKD" lang_to="ENG" format="logical"`)
	assert.Contains(t, out, "<k>сврз</k>")
	assert.Contains(t, out, "<gr>сврзник</gr>")
}

func TestMain_Run_ExportJSONToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWords(t, dir)
	out := filepath.Join(dir, "words.json")
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"--dir", dir, "export", "--format", "json", "-o", out}, &stdout, &stderr)

	require.NoError(t, err, stderr.String())
	var words []*mkdict.WordRecord
	readJSONFile(t, out, &words)
	require.Len(t, words, 1)
	assert.Equal(t, "сврз", words[0].Word)
}

func TestMain_Run_ExportRecordsSourceSite(t *testing.T) {
	t.Parallel()

	t.Run("defaults to the dictionary site", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeWords(t, dir)
		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{"--dir", dir, "export"}, &stdout, &stderr)

		require.NoError(t, err, stderr.String())
		assert.Contains(t, stdout.String(), "<dict_src_url>"+mkdict.DefaultBaseURL+"</dict_src_url>")
	})

	t.Run("uses the crawled mirror", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeWords(t, dir)
		var stdout, stderr bytes.Buffer

		err := main.NewMain().Run(context.Background(), []string{"--dir", dir, "export", "--base-url", testBase}, &stdout, &stderr)

		require.NoError(t, err, stderr.String())
		assert.Contains(t, stdout.String(), "<dict_src_url>"+testBase+"</dict_src_url>")
		assert.NotContains(t, stdout.String(), mkdict.DefaultBaseURL)
	})
}

func TestMain_Run_ExportUnwritableOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWords(t, dir)
	out := filepath.Join(dir, "missing", "words.xdxf")
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"--dir", dir, "export", "-o", out}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, mkdict.EPERSISTENCE, mkdict.ErrorCode(err))
	assert.Contains(t, stderr.String(), "error: create "+out)
	assert.NoFileExists(t, out)
}

func TestMain_Run_ExportXDXFToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeWords(t, dir)
	out := filepath.Join(dir, "words.xdxf")
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"--dir", dir, "export", "-o", out}, &stdout, &stderr)

	require.NoError(t, err, stderr.String())
	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<k>сврз</k>")
}

func TestMain_Run_ExportWithoutCrawl(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"--dir", t.TempDir(), "export"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, mkdict.ENOTFOUND, mkdict.ErrorCode(err))
	assert.Contains(t, stderr.String(), "mkdict crawl")
}

func writeWords(t *testing.T, dir string) {
	t.Helper()

	data := `[{"word":"сврз","grammar":"сврзник","definitions":[{"meaning":"Поврзува."}]}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "allWordsData.json"), []byte(data), 0644))
}

func readJSONFile(t *testing.T, path string, v any) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
