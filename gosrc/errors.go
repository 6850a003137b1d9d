package gosrc

import (
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/litrewrite/messages"
)

var (
	// ErrParseSource is returned when a Go file does not parse
	ErrParseSource = i18n.NewErrorWithProvider(messages.Keys.Gosrc.ParseFailed, messages.Provider())

	// ErrFormatSource is returned when the rewritten file cannot be printed
	ErrFormatSource = i18n.NewErrorWithProvider(messages.Keys.Gosrc.FormatFailed, messages.Provider())

	// ErrReadFile is returned when a source file cannot be read
	ErrReadFile = i18n.NewErrorWithProvider(messages.Keys.Cli.ReadFailed, messages.Provider())

	// ErrWriteFile is returned when a rewritten file cannot be saved
	ErrWriteFile = i18n.NewErrorWithProvider(messages.Keys.Cli.WriteFailed, messages.Provider())
)
