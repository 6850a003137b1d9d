package commands

import (
	"fmt"

	"github.com/napalu/goopt/v2"

	"github.com/napalu/litrewrite/gosrc"
	"github.com/napalu/litrewrite/internal/fsutil"
	"github.com/napalu/litrewrite/messages"
	"github.com/napalu/litrewrite/options"
	"github.com/napalu/litrewrite/rewrite"
)

// Go is the exec function of the go command
func Go(parser *goopt.Parser, _ *goopt.Command) error {
	cfg, ok := goopt.GetStructCtxAs[*options.AppConfig](parser)
	if !ok {
		return fmt.Errorf("failed to get config from parser")
	}
	return RunGo(cfg)
}

// RunGo rewrites the Go files matched by cfg.Go.Files. With DryRun set the
// rewritten sources are printed instead of written.
func RunGo(cfg *options.AppConfig) error {
	prepare(cfg)

	rc, err := loadConfig(cfg)
	if err != nil {
		return err
	}

	files, err := fsutil.ExpandGlobPatterns(cfg.Go.Files)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoGoFiles
	}

	rw := gosrc.NewRewriter(rc)
	var total rewrite.Stats
	for _, file := range files {
		res, err := rw.ProcessFile(file, cfg.Go.DryRun)
		if err != nil {
			return err
		}
		total = total.Add(res.Stats)

		if !res.Changed() {
			cfg.Log.Debug().Msg(cfg.TR.T(messages.Keys.Gosrc.FileUnchanged, file))
			continue
		}
		if cfg.Go.DryRun {
			fmt.Fprintln(cfg.Stdout, cfg.TR.T(messages.Keys.Gosrc.DryRunHeader, file, res.Stats.Rewritten, res.Stats.Matched))
			if _, err := cfg.Stdout.Write(res.Source); err != nil {
				return ErrWriteOutput.WithArgs("stdout").Wrap(err)
			}
			continue
		}
		cfg.Log.Info().
			Str("file", file).
			Int("rewritten", res.Stats.Rewritten).
			Msg(cfg.TR.T(messages.Keys.Gosrc.FileUpdated, file, res.Stats.Rewritten, res.Stats.Matched))
	}

	cfg.Log.Info().Msg(cfg.TR.T(messages.Keys.Gosrc.Summary, len(files), total.Rewritten))
	return nil
}
