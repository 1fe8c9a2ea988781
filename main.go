package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/iancoleman/strcase"

	"github.com/mcncl/jsontree/internal/config"
	"github.com/mcncl/jsontree/internal/errors"
	"github.com/mcncl/jsontree/internal/parser"
	"github.com/mcncl/jsontree/internal/value"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Check       bool   `help:"Validate the input without emitting the document." short:"c"`
	KeyCase     string `help:"Rewrite object keys before output: none, camel, snake or kebab." enum:"none,camel,snake,kebab" default:"none"`
	MaxDepth    int    `help:"Maximum container nesting depth. 0 uses the built-in default."`
	Config      string `help:"Path to a config file. Discovered automatically when omitted." type:"path"`
	Debug       bool   `help:"Print the diagnostic tree rendering to stderr." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	kongParser := kong.Must(&CLI,
		kong.Name("jsontree"),
		kong.Description("Parse, validate and re-emit JSON documents as compact canonical text"),
		kong.UsageOnError(),
	)

	// With no arguments at all, fall back to interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := kongParser.Parse(os.Args[1:])
	if err != nil {
		// Kong already printed usage via kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsontree version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug || cfg.Dev.Debug, Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsontree --help\n")
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration: file values first, then CLI
// overrides on top.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if CLI.MaxDepth > 0 {
		cfg.Parser.MaxDepth = CLI.MaxDepth
	}
	if CLI.KeyCase != "none" {
		cfg.Output.KeyCase = CLI.KeyCase
	}
	if CLI.Check {
		cfg.Output.CheckOnly = true
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse JSON input
	root, err := parseInput(ctx.Config)
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "parsed tree: %s\n", root)
	}

	// 2. Validation-only mode stops here
	if ctx.Config.Output.CheckOnly {
		fmt.Fprintln(os.Stderr, "valid JSON")
		return nil
	}

	// 3. Optionally rewrite object keys
	root = rewriteKeys(root, ctx.Config.Output.KeyCase)

	// 4. Serialize compactly and output
	return writeOutput(value.Serialize(root))
}

// parseInput reads JSON from file or stdin
func parseInput(cfg *config.Config) (value.Value, error) {
	opts := parser.Options{MaxDepth: cfg.Parser.MaxDepth}

	if CLI.Input != "" {
		return parser.ParseFileWithOptions(CLI.Input, opts)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput(opts)
		}
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseStringWithOptions(string(jsonData), opts)
}

// writeOutput writes the serialized document to file or stdout
func writeOutput(doc string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(doc+"\n"), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Serialized JSON written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(doc)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// rewriteKeys returns a tree with every object key converted to the given
// case. Converted keys that collide keep the last value.
func rewriteKeys(v value.Value, keyCase string) value.Value {
	var conv func(string) string
	switch keyCase {
	case "camel":
		conv = strcase.ToLowerCamel
	case "snake":
		conv = strcase.ToSnake
	case "kebab":
		conv = strcase.ToKebab
	default:
		return v
	}
	return rewriteValue(v, conv)
}

func rewriteValue(v value.Value, conv func(string) string) value.Value {
	switch node := v.(type) {
	case *value.Object:
		out := value.NewObject()
		for _, k := range node.Keys() {
			child, _ := node.Get(k)
			out.Insert(conv(k), rewriteValue(child, conv))
		}
		return out
	case value.Array:
		out := make(value.Array, len(node))
		for i, elem := range node {
			out[i] = rewriteValue(elem, conv)
		}
		return out
	default:
		return v
	}
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput(opts parser.Options) (value.Value, error) {
	fmt.Fprintln(os.Stderr, "jsontree Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			jsonBuilder.WriteString(line)
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseStringWithOptions(jsonData, opts)
}
