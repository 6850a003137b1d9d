package rewrite

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the substitution table for one rewrite invocation. It is never
// modified after construction and may be shared between goroutines.
type Config struct {
	functionName string
	strings      map[string]string
}

// NewConfig validates functionName and copies translations into a new Config.
func NewConfig(functionName string, translations map[string]string) (*Config, error) {
	if functionName == "" {
		return nil, ErrConfigMalformed.Wrap(ErrFunctionNameRequired)
	}
	if translations == nil {
		return nil, ErrConfigMalformed.Wrap(ErrStringsRequired)
	}
	c := &Config{
		functionName: functionName,
		strings:      make(map[string]string, len(translations)),
	}
	for k, v := range translations {
		c.strings[k] = v
	}
	return c, nil
}

// FunctionName returns the callee name whose calls are rewritten
func (c *Config) FunctionName() string {
	return c.functionName
}

// Len returns the number of entries in the table
func (c *Config) Len() int {
	return len(c.strings)
}

// Matches reports whether name is exactly the configured function name.
func (c *Config) Matches(name string) bool {
	return name == c.functionName
}

// Lookup returns the replacement for a decoded literal value. Keys are
// compared byte for byte.
func (c *Config) Lookup(value string) (string, bool) {
	r, ok := c.strings[value]
	return r, ok
}

// WithFunctionName returns a copy of c that targets name instead.
func (c *Config) WithFunctionName(name string) (*Config, error) {
	return NewConfig(name, c.strings)
}

// WithStrings returns a copy of c with extra merged into the table. Entries
// in extra win over existing ones.
func (c *Config) WithStrings(extra map[string]string) *Config {
	merged := make(map[string]string, len(c.strings)+len(extra))
	for k, v := range c.strings {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return &Config{functionName: c.functionName, strings: merged}
}

// Format is the serialization of a configuration payload.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "json"
}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, ErrUnknownFormat.WithArgs(name)
}

// FormatForPath picks a Format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatJSON
	}
	return f
}

// payload is the wire shape of a configuration record.
type payload struct {
	FunctionName *string          `json:"function_name" toml:"function_name" yaml:"function_name"`
	Strings      map[string]string `json:"strings" toml:"strings" yaml:"strings"`
}

// LoadConfig decodes a JSON configuration payload as handed over by a host.
func LoadConfig(data []byte) (*Config, error) {
	return DecodeConfig(data, FormatJSON)
}

// DecodeConfig decodes a configuration payload in the given format. An empty
// payload yields ErrConfigMissing; anything that does not decode into a
// function name and a string table yields ErrConfigMalformed.
func DecodeConfig(data []byte, f Format) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrConfigMissing
	}

	var p payload
	switch f {
	case FormatTOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, ErrConfigMalformed.Wrap(err)
		}
		if md.IsDefined("strings") && p.Strings == nil {
			p.Strings = map[string]string{}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, ErrConfigMalformed.Wrap(err)
		}
	default:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, ErrConfigMalformed.Wrap(err)
		}
	}

	if p.FunctionName == nil {
		return nil, ErrConfigMalformed.Wrap(ErrFunctionNameRequired)
	}
	return NewConfig(*p.FunctionName, p.Strings)
}

// LoadConfigFile reads and decodes a configuration file. The format follows
// the file extension (.json, .toml, .yaml, .yml).
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrConfigMissing.Wrap(err)
	}
	return DecodeConfig(data, FormatForPath(path))
}

// LoadStringsFile reads a flat JSON object of source to replacement strings,
// the layout goopt locale files use.
func LoadStringsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, ErrStringsInvalid.WithArgs(path).Wrap(err)
	}
	if table == nil {
		table = map[string]string{}
	}
	return table, nil
}
