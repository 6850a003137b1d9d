package ast

import (
	"github.com/napalu/goopt/v2/i18n"
	"github.com/napalu/litrewrite/messages"
)

var (
	// ErrTreeMalformed is returned when the input is not valid JSON
	ErrTreeMalformed = i18n.NewErrorWithProvider(messages.Keys.Tree.Malformed, messages.Provider())

	// ErrRootNotNode is returned when the JSON root is not a typed node object
	ErrRootNotNode = i18n.NewErrorWithProvider(messages.Keys.Tree.RootNotNode, messages.Provider())

	// ErrUnknownDialect is returned by ParseDialect for unsupported names
	ErrUnknownDialect = i18n.NewErrorWithProvider(messages.Keys.Tree.UnknownDialect, messages.Provider())
)
