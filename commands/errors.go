package commands

import (
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/litrewrite/messages"
)

var (
	// ErrNoInput is returned when the tree command has no input files and stdin is interactive
	ErrNoInput = i18n.NewErrorWithProvider(messages.Keys.Cli.NoInput, messages.Provider())

	// ErrConfigFile wraps errors raised while loading --config
	ErrConfigFile = i18n.NewErrorWithProvider(messages.Keys.Cli.ConfigFileFailed, messages.Provider())

	// ErrReadInput is returned when an input cannot be read
	ErrReadInput = i18n.NewErrorWithProvider(messages.Keys.Cli.ReadFailed, messages.Provider())

	// ErrWriteOutput is returned when a rewritten tree cannot be written
	ErrWriteOutput = i18n.NewErrorWithProvider(messages.Keys.Cli.WriteFailed, messages.Provider())

	// ErrOutputMultiple is returned when --output is combined with several inputs
	ErrOutputMultiple = i18n.NewErrorWithProvider(messages.Keys.Tree.OutputMultiple, messages.Provider())

	// ErrNoGoFiles is returned when the go command's patterns match nothing
	ErrNoGoFiles = i18n.NewErrorWithProvider(messages.Keys.Gosrc.NoFiles, messages.Provider())
)
