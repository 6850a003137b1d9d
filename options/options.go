package options

import (
	"io"

	"github.com/napalu/goopt/v2"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/rs/zerolog"
)

// TreeCmd rewrites JSON syntax trees produced by a JavaScript parser
type TreeCmd struct {
	Input   []string `goopt:"short:i;desc:JSON tree files, supports wildcards (reads stdin when omitted)"`
	Dialect string   `goopt:"short:d;desc:Tree dialect (estree, babel, swc);default:estree"`
	Output  string   `goopt:"short:o;desc:Output file when rewriting a single tree (default: stdout)"`
	Suffix  string   `goopt:"desc:Suffix inserted before the extension of output files when rewriting several trees;default:.rewritten"`
	InPlace bool     `goopt:"desc:Overwrite the input files"`
	Indent  bool     `goopt:"desc:Indent the JSON output"`
	Jobs    int      `goopt:"short:j;desc:Number of trees rewritten concurrently;default:4"`
	Exec    goopt.CommandFunc
}

// GoCmd rewrites Go source files
type GoCmd struct {
	Files  []string `goopt:"desc:Go files to rewrite (supports **);default:**/*.go"`
	DryRun bool     `goopt:"short:n;desc:Print rewritten sources instead of writing them"`
	Exec   goopt.CommandFunc
}

// AppConfig main application configuration
type AppConfig struct {
	Config       string   `goopt:"short:c;desc:Configuration file with function_name and strings (.json, .toml, .yaml)"`
	FunctionName string   `goopt:"short:f;desc:Override the configured function name"`
	Strings      []string `goopt:"short:s;desc:Extra flat JSON string tables merged into the configuration (supports wildcards)"`
	Verbose      bool     `goopt:"short:v;desc:Enable verbose output"`
	Language     string   `goopt:"short:l;desc:Language for output (en, de)"`
	Help         bool     `goopt:"short:h;desc:Show help"`
	Tree         TreeCmd  `goopt:"kind:command;name:tree;desc:Rewrite JSON syntax trees"`
	Go           GoCmd    `goopt:"kind:command;name:go;desc:Rewrite Go source files"`

	TR     i18n.Translator `ignore:"true"` // Translator for messages
	Log    zerolog.Logger  `ignore:"true"`
	Stdin  io.Reader       `ignore:"true"`
	Stdout io.Writer       `ignore:"true"`
}
