package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/napalu/litrewrite/commands"
	"github.com/napalu/litrewrite/messages"
	"github.com/napalu/litrewrite/options"
)

func main() {
	cfg := &options.AppConfig{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	// Assign command functions
	cfg.Tree.Exec = commands.Tree
	cfg.Go.Exec = commands.Go

	bundle := messages.Bundle()
	cfg.TR = bundle

	parser, err := goopt.NewParserFromStruct(cfg,
		goopt.WithFlagNameConverter(goopt.ToKebabCase),
		goopt.WithEnvNameConverter(goopt.ToKebabCase),
		goopt.WithCommandNameConverter(goopt.ToKebabCase),
		goopt.WithUserBundle(bundle))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create parser: %v\n", err)
		os.Exit(1)
	}

	success := parser.Parse(os.Args)

	// Handle language switching
	if cfg.Language != "" && cfg.Language != bundle.GetDefaultLanguage().String() {
		lang := parseLanguage(cfg.Language)
		if lang != language.Und {
			bundle.SetDefaultLanguage(lang)
			// goopt's own messages use the system bundle
			i18n.Default().SetDefaultLanguage(lang)
		}
	}

	if cfg.Help {
		parser.PrintUsageWithGroups(os.Stdout)
		os.Exit(0)
	}

	if !success {
		for _, err := range parser.GetErrors() {
			fmt.Fprintln(os.Stderr, cfg.TR.T(messages.Keys.Cli.ParseError, err))
			fmt.Fprintln(os.Stderr)
		}
		parser.PrintUsageWithGroups(os.Stderr)
		os.Exit(1)
	}

	cfg.Log = newLogger(cfg.Verbose)

	if errCount := parser.ExecuteCommands(); errCount > 0 {
		for _, cmdErr := range parser.GetCommandExecutionErrors() {
			cfg.Log.Error().Msg(cfg.TR.T(messages.Keys.Cli.CommandFailed, cmdErr.Key, cmdErr.Value))
		}
		os.Exit(1)
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Str("run", uuid.NewString()[:8]).
		Logger()
}

func parseLanguage(lang string) language.Tag {
	switch strings.ToLower(lang) {
	case "en":
		return language.English
	case "de":
		return language.German
	default:
		return language.Und
	}
}
