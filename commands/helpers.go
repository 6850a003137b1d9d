package commands

import (
	"io"
	"os"
	"strings"

	"github.com/napalu/litrewrite/internal/fsutil"
	"github.com/napalu/litrewrite/messages"
	"github.com/napalu/litrewrite/options"
	"github.com/napalu/litrewrite/rewrite"
)

// prepare fills in the ignored AppConfig fields that main normally sets, so
// the Run functions can be called directly.
func prepare(cfg *options.AppConfig) {
	if cfg.TR == nil {
		cfg.TR = messages.Bundle()
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
}

// loadConfig builds the rewrite configuration from --config, --strings and
// --function-name. Without --config, --strings and --function-name must
// supply the whole table.
func loadConfig(cfg *options.AppConfig) (*rewrite.Config, error) {
	extra, err := loadStrings(cfg.Strings)
	if err != nil {
		return nil, err
	}

	var rc *rewrite.Config
	switch {
	case cfg.Config != "":
		rc, err = rewrite.LoadConfigFile(cfg.Config)
		if err != nil {
			return nil, ErrConfigFile.WithArgs(cfg.Config).Wrap(err)
		}
	case len(cfg.Strings) > 0:
		rc, err = rewrite.NewConfig(cfg.FunctionName, map[string]string{})
		if err != nil {
			return nil, err
		}
	default:
		return nil, rewrite.ErrConfigMissing
	}

	if cfg.FunctionName != "" && cfg.FunctionName != rc.FunctionName() {
		if rc, err = rc.WithFunctionName(cfg.FunctionName); err != nil {
			return nil, err
		}
	}
	if len(extra) > 0 {
		rc = rc.WithStrings(extra)
	}

	cfg.Log.Debug().
		Str("function", rc.FunctionName()).
		Int("strings", rc.Len()).
		Msg("configuration loaded")
	return rc, nil
}

// loadStrings merges the flat string tables matched by patterns. Later files
// win over earlier ones.
func loadStrings(patterns []string) (map[string]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	files, err := expandInputs(patterns)
	if err != nil {
		return nil, err
	}
	merged := make(map[string]string)
	for _, f := range files {
		table, err := rewrite.LoadStringsFile(f)
		if err != nil {
			return nil, ErrReadInput.WithArgs(f).Wrap(err)
		}
		for k, v := range table {
			merged[k] = v
		}
	}
	return merged, nil
}

// expandInputs expands glob patterns and fails when nothing matches.
func expandInputs(patterns []string) ([]string, error) {
	files, err := fsutil.ExpandGlobPatterns(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrReadInput.WithArgs(strings.Join(patterns, ", "))
	}
	return files, nil
}

func readAll(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.WithArgs(name).Wrap(err)
	}
	return data, nil
}
