package rewrite

import (
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/litrewrite/messages"
)

var (
	// ErrConfigMissing is returned when no configuration payload was supplied
	ErrConfigMissing = i18n.NewErrorWithProvider(messages.Keys.Config.Missing, messages.Provider())

	// ErrConfigMalformed is returned when the payload does not decode into a valid configuration
	ErrConfigMalformed = i18n.NewErrorWithProvider(messages.Keys.Config.Malformed, messages.Provider())

	// ErrFunctionNameRequired is wrapped by ErrConfigMalformed when function_name is absent or empty
	ErrFunctionNameRequired = i18n.NewErrorWithProvider(messages.Keys.Config.FunctionNameRequired, messages.Provider())

	// ErrStringsRequired is wrapped by ErrConfigMalformed when strings is absent
	ErrStringsRequired = i18n.NewErrorWithProvider(messages.Keys.Config.StringsRequired, messages.Provider())

	// ErrUnknownFormat is returned for configuration formats other than json, toml and yaml
	ErrUnknownFormat = i18n.NewErrorWithProvider(messages.Keys.Config.UnknownFormat, messages.Provider())

	// ErrStringsInvalid is returned when an extra strings file is not a flat string map
	ErrStringsInvalid = i18n.NewErrorWithProvider(messages.Keys.Config.StringsInvalid, messages.Provider())
)
