package messages

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func loadLocale(t *testing.T, name string) map[string]string {
	t.Helper()
	data, err := localesFS.ReadFile("locales/" + name + ".json")
	require.NoError(t, err)
	var m map[string]string
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

// collectKeys returns the values of all string fields of the nested Keys struct
func collectKeys(v reflect.Value) []string {
	var keys []string
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch f.Kind() {
		case reflect.String:
			keys = append(keys, f.String())
		case reflect.Struct:
			keys = append(keys, collectKeys(f)...)
		}
	}
	return keys
}

func TestLocalesAreComplete(t *testing.T) {
	en := loadLocale(t, "en")
	de := loadLocale(t, "de")

	keys := collectKeys(reflect.ValueOf(Keys))
	assert.Len(t, en, len(keys), "en.json and keys.go are out of sync")
	for _, key := range keys {
		assert.Contains(t, en, key)
		assert.Contains(t, de, key)
	}
	for key := range de {
		assert.Contains(t, en, key, "de.json has a key missing from en.json")
	}
}

func TestBundle(t *testing.T) {
	b := Bundle()
	require.NotNil(t, b)
	assert.Same(t, b, Bundle())

	assert.Equal(t, "unknown tree dialect \"flow\"", b.TL(language.English, Keys.Tree.UnknownDialect, "flow"))
	assert.Equal(t, "unbekannter Baum-Dialekt \"flow\"", b.TL(language.German, Keys.Tree.UnknownDialect, "flow"))
	assert.Equal(t, "malformed configuration", Provider().GetMessage(Keys.Config.Malformed))
}
