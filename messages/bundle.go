package messages

//go:generate goopt-i18n-gen -i "locales/*.json" generate -o keys.go -p messages

import (
	"embed"
	"sync"

	"github.com/napalu/goopt/v2/i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	provider   i18n.MessageProvider
)

// Bundle returns the shared message bundle built from the embedded locales.
// The embedded files are part of the binary, so failing to load them is a
// programming error and panics.
func Bundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		b, err := i18n.NewBundleWithFS(localesFS, "locales")
		if err != nil {
			panic("messages: failed to load embedded locales: " + err.Error())
		}
		bundle = b
		provider = i18n.NewLayeredMessageProvider(b, nil, nil)
	})
	return bundle
}

// Provider returns a message provider backed by Bundle, used by the
// package-level error sentinels so they render real messages instead of keys.
func Provider() i18n.MessageProvider {
	Bundle()
	return provider
}
