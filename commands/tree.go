package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/goopt/v2"
	"golang.org/x/sync/errgroup"

	"github.com/napalu/litrewrite/ast"
	"github.com/napalu/litrewrite/internal/fsutil"
	"github.com/napalu/litrewrite/internal/util"
	"github.com/napalu/litrewrite/messages"
	"github.com/napalu/litrewrite/options"
	"github.com/napalu/litrewrite/rewrite"
)

// Tree is the exec function of the tree command
func Tree(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return fmt.Errorf("failed to get config from parser")
	}
	return RunTree(cfg)
}

// treeJob is one tree to rewrite and where its result goes. An empty target
// means the configured stdout.
type treeJob struct {
	source string
	target string
	data   []byte
	stats  rewrite.Stats
}

// RunTree rewrites the JSON syntax trees named by cfg.Tree.Input, or the tree
// read from stdin when no input is given.
func RunTree(cfg *options.AppConfig) error {
	prepare(cfg)

	dialect, err := ast.ParseDialect(cfg.Tree.Dialect)
	if err != nil {
		return err
	}
	rc, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	jobs, err := planTreeJobs(cfg)
	if err != nil {
		return err
	}

	g := new(errgroup.Group)
	limit := cfg.Tree.Jobs
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			return rewriteTree(cfg, rc, dialect, job)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total rewrite.Stats
	for _, job := range jobs {
		total = total.Add(job.stats)
		cfg.Log.Debug().
			Str("file", job.source).
			Int("calls", job.stats.Calls).
			Int("matched", job.stats.Matched).
			Int("rewritten", job.stats.Rewritten).
			Msg(cfg.TR.T(messages.Keys.Tree.Rewritten, job.source, job.stats.Rewritten, job.stats.Matched))
		if job.target != "" {
			continue
		}
		if _, err := cfg.Stdout.Write(job.data); err != nil {
			return ErrWriteOutput.WithArgs("stdout").Wrap(err)
		}
	}
	cfg.Log.Info().Msg(cfg.TR.T(messages.Keys.Tree.Summary, len(jobs), total.Rewritten))
	return nil
}

func planTreeJobs(cfg *options.AppConfig) ([]*treeJob, error) {
	tc := cfg.Tree
	if len(tc.Input) == 0 {
		if util.IsInteractive(cfg.Stdin) {
			return nil, ErrNoInput
		}
		data, err := readAll(cfg.Stdin, "stdin")
		if err != nil {
			return nil, err
		}
		return []*treeJob{{source: "stdin", target: tc.Output, data: data}}, nil
	}

	files, err := expandInputs(tc.Input)
	if err != nil {
		return nil, err
	}
	if tc.Output != "" && len(files) > 1 {
		return nil, ErrOutputMultiple.WithArgs(len(files))
	}

	jobs := make([]*treeJob, 0, len(files))
	for _, f := range files {
		job := &treeJob{source: f}
		switch {
		case tc.InPlace:
			job.target = f
		case tc.Output != "":
			job.target = tc.Output
		case len(files) > 1:
			job.target = suffixedPath(f, tc.Suffix)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// suffixedPath inserts suffix before the extension of path:
// tree.json becomes tree.rewritten.json.
func suffixedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func rewriteTree(cfg *options.AppConfig, rc *rewrite.Config, d ast.Dialect, job *treeJob) error {
	if job.data == nil {
		data, err := os.ReadFile(job.source)
		if err != nil {
			return ErrReadInput.WithArgs(job.source).Wrap(err)
		}
		job.data = data
	}

	root, err := ast.Unmarshal(job.data, d)
	if err != nil {
		return ErrReadInput.WithArgs(job.source).Wrap(err)
	}
	root, job.stats = rewrite.Rewrite(root, rc)

	var buf bytes.Buffer
	enc := ast.NewEncoder(&buf, d)
	if cfg.Tree.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(root); err != nil {
		return ErrWriteOutput.WithArgs(job.source).Wrap(err)
	}
	job.data = buf.Bytes()

	if job.target == "" {
		return nil
	}
	if err := fsutil.WriteFileAtomic(job.target, job.data); err != nil {
		return ErrWriteOutput.WithArgs(job.target).Wrap(err)
	}
	return nil
}
