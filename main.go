package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/JonasFriedli/DestructiveJSON/internal/config"
	"github.com/JonasFriedli/DestructiveJSON/internal/errors"
	"github.com/JonasFriedli/DestructiveJSON/internal/formatter"
	"github.com/JonasFriedli/DestructiveJSON/internal/generator"
	"github.com/JonasFriedli/DestructiveJSON/internal/models"
	"github.com/JonasFriedli/DestructiveJSON/internal/ui"
)

// Version information
const (
	Version = "0.1.0"
)

// CLI defines the command-line interface: one subcommand per payload
// shape, plus "all" for the whole catalog.
var CLI struct {
	ConfigFile string           `help:"Path to a djson YAML config file. Searched for in parent directories if not given." name:"config" type:"path"`
	Pretty     *bool            `help:"Pretty-print structured payloads with two-space indentation. Overrides the config file's output.pretty."`
	Version    kong.VersionFlag `help:"Show version information."`

	Nested       NestedCmd       `cmd:"" help:"Generate deeply nested JSON."`
	Manykeys     ManykeysCmd     `cmd:"" help:"Generate JSON with many keys."`
	Longkey      LongkeyCmd      `cmd:"" help:"Generate JSON with an extremely long key."`
	Hugearray    HugearrayCmd    `cmd:"" help:"Generate JSON with a huge array."`
	Duplicate    DuplicateCmd    `cmd:"" help:"Generate JSON text with duplicate keys (raw output)."`
	Controlchars ControlcharsCmd `cmd:"" help:"Generate JSON whose keys contain control and whitespace characters."`
	Dunder       DunderCmd       `cmd:"" help:"Generate payloads with reserved keys like __dict__ and __class__."`
	Malformed    MalformedCmd    `cmd:"" help:"Generate malformed JSON documents."`
	Naninf       NaninfCmd       `cmd:"" help:"Generate JSON containing NaN/Infinity tokens (raw output)."`
	Mixed        MixedCmd        `cmd:"" help:"Generate a mixed payload: many keys + dunder + long key."`
	All          AllCmd          `cmd:"" help:"Generate one payload per shape into a directory."`
}

// Context holds the runtime context passed to every subcommand
type Context struct {
	Config *config.Config
	Pretty bool
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("djson"),
		kong.Description("Generate destructive JSON payloads for authorized security testing."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("djson version %s", Version)},
	)

	cfg, err := loadConfig()
	if err == nil {
		// The flag overrides the config file's output.pretty only when
		// actually given.
		pretty := cfg.Output.Pretty
		if CLI.Pretty != nil {
			pretty = *CLI.Pretty
		}
		err = ctx.Run(&Context{Config: cfg, Pretty: pretty})
	}
	if err != nil {
		ui.Errorf("%s", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: an explicit --config
// path, else the nearest config file up the directory tree, else the
// built-in defaults.
func loadConfig() (*config.Config, error) {
	if CLI.ConfigFile != "" {
		return config.LoadConfig(CLI.ConfigFile)
	}
	if path := config.FindConfigFile(); path != "" {
		return config.LoadConfig(path)
	}
	return config.NewConfig(), nil
}

// writePayload renders a payload and writes it to the named file, or to
// stdout when output is "-". Binary payloads are written verbatim in
// both cases; text ones get the single UTF-8 encode step of the
// string-to-bytes conversion.
func writePayload(ctx *Context, p models.Payload, output string) error {
	data, err := formatter.Render(p, ctx.Pretty)
	if err != nil {
		return err
	}

	if output == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return errors.NewOutputError("failed to write to stdout", err)
		}
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", output), err)
	}
	ui.Wrote(output, len(data))
	return nil
}

// NestedCmd generates the deep-nesting payload
type NestedCmd struct {
	Depth  int    `help:"Nesting depth." short:"d" default:"500"`
	Output string `help:"Output file (or - for stdout)." short:"o" default:"nested.json"`
}

func (c *NestedCmd) Run(ctx *Context) error {
	payload, err := generator.Nested(c.Depth)
	if err != nil {
		return err
	}
	return writePayload(ctx, payload, c.Output)
}

// ManykeysCmd generates the wide-object payload
type ManykeysCmd struct {
	Count  int    `help:"Number of keys." short:"n" default:"50000"`
	Prefix string `help:"Key prefix." short:"p" default:"k"`
	Output string `help:"Output file (or - for stdout)." short:"o" default:"many.json"`
}

func (c *ManykeysCmd) Run(ctx *Context) error {
	payload, err := generator.ManyKeys(c.Count, c.Prefix)
	if err != nil {
		return err
	}
	return writePayload(ctx, payload, c.Output)
}

// LongkeyCmd generates the long-key payload
type LongkeyCmd struct {
	Length int    `help:"Key length." short:"l" default:"5000"`
	Output string `help:"Output file (or - for stdout)." short:"o" default:"longkey.json"`
}

func (c *LongkeyCmd) Run(ctx *Context) error {
	payload, err := generator.LongKey(c.Length)
	if err != nil {
		return err
	}
	return writePayload(ctx, payload, c.Output)
}

// HugearrayCmd generates the huge-array payload
type HugearrayCmd struct {
	Length int    `help:"Array length (elements)." short:"n" default:"1000000"`
	Output string `help:"Output file (or - for stdout)." short:"o" default:"hugearray.json"`
}

func (c *HugearrayCmd) Run(ctx *Context) error {
	payload, err := generator.HugeArray(c.Length, int64(0))
	if err != nil {
		return err
	}
	return writePayload(ctx, payload, c.Output)
}

// DuplicateCmd generates the duplicate-key raw-text payload
type DuplicateCmd struct {
	Key    string `help:"Duplicate key name." short:"k" default:"dup"`
	Values int    `help:"Number of duplicate occurrences." short:"v" default:"5"`
	Output string `help:"Output file (or - for stdout)." short:"o" default:"duplicate.json"`
}

func (c *DuplicateCmd) Run(ctx *Context) error {
	values, err := generator.DuplicateValues(c.Key, c.Values)
	if err != nil {
		return err
	}
	payload, err := generator.DuplicateKeys(c.Key, values)
	if err != nil {
		return err
	}
	return writePayload(ctx, payload, c.Output)
}

// DunderCmd generates the key-injection payload
type DunderCmd struct {
	Type   string `help:"Dunder payload type: simple (class key), full (attribute dict), all (every catalog key)." short:"t" enum:"simple,full,all" default:"simple"`
	Output string `help:"Output file (or - for stdout)." short:"o" default:"dunder.json"`
}

func (c *DunderCmd) Run(ctx *Context) error {
	payload, err := generator.Dunder(generator.DunderMode(c.Type), ctx.Config.Dunder)
	if err != nil {
		return err
	}
	return writePayload(ctx, payload, c.Output)
}

// MalformedCmd generates a syntactically broken document
type MalformedCmd struct {
	Mode   string `help:"Malformed mode." short:"m" enum:"unclosed,trailing-comma,bad-token,broken-utf8" default:"unclosed"`
	Output string `help:"Output file (or - for stdout)." short:"o" default:"malformed.json"`
}

func (c *MalformedCmd) Run(ctx *Context) error {
	invalidUTF8, err := ctx.Config.InvalidUTF8Bytes()
	if err != nil {
		return err
	}
	payload := generator.Malformed(generator.MalformedMode(c.Mode), invalidUTF8)
	return writePayload(ctx, payload, c.Output)
}

// ControlcharsCmd generates the control-character-key payload
type ControlcharsCmd struct {
	Output string `help:"Output file (or - for stdout)." short:"o" default:"controlchars.json"`
}

func (c *ControlcharsCmd) Run(ctx *Context) error {
	return writePayload(ctx, generator.ControlChars(), c.Output)
}

// NaninfCmd generates the non-standard-literal payload
type NaninfCmd struct {
	Output string `help:"Output file (or - for stdout)." short:"o" default:"naninf.json"`
}

func (c *NaninfCmd) Run(ctx *Context) error {
	return writePayload(ctx, generator.NaNInf(), c.Output)
}

// MixedCmd generates the composite payload
type MixedCmd struct {
	Count  int    `help:"Number of normal keys." short:"n" default:"50000"`
	Long   int    `help:"Length of the extra long key." short:"l" default:"2000"`
	Output string `help:"Output file (or - for stdout)." short:"o" default:"mixed.json"`
}

func (c *MixedCmd) Run(ctx *Context) error {
	payload, err := generator.Mixed(c.Count, c.Long, ctx.Config.Dunder)
	if err != nil {
		return err
	}
	return writePayload(ctx, payload, c.Output)
}

// AllCmd generates every shape into a directory
type AllCmd struct {
	Outdir string `help:"Output directory. Defaults to the config file's output.outdir." short:"d"`
	Depth  *int   `help:"Override the default nesting depth."`
	Many   *int   `help:"Override the default key count."`
	Long   *int   `help:"Override the default long-key length."`
}

func (c *AllCmd) Run(ctx *Context) error {
	// Flags override the defaults record only when given, so a config
	// file keeps authority over anything the user did not spell out.
	cfg := *ctx.Config
	if c.Depth != nil {
		cfg.Defaults.Depth = *c.Depth
	}
	if c.Many != nil {
		cfg.Defaults.ManyKeys = *c.Many
	}
	if c.Long != nil {
		cfg.Defaults.LongKey = *c.Long
	}
	outdir := c.Outdir
	if outdir == "" {
		outdir = cfg.Output.Outdir
	}

	entries, err := generator.All(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outdir, 0755); err != nil {
		return errors.NewOutputError(fmt.Sprintf("failed to create output directory '%s'", outdir), err)
	}
	for _, e := range entries {
		if err := writePayload(ctx, e.Payload, filepath.Join(outdir, e.File)); err != nil {
			return err
		}
	}
	ui.Infof("All payloads written to %s", outdir)
	return nil
}
