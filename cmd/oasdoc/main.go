// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/oasdoc

// oasdoc renders OpenAPI schemas as annotated AsciiDoc example listings.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/oasdoc"
	"github.com/woozymasta/oasdoc/internal/logging"
	"github.com/woozymasta/oasdoc/openapi"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/oasdoc"
	_buildTime string
)

// cliOptions describes oasdoc CLI flags and subcommands.
type cliOptions struct {
	Verbose []bool `short:"v" long:"verbose" description:"Verbose logging (repeat for trace)"`
	Quiet   bool   `short:"q" long:"quiet" description:"Log errors only"`

	Version           versionCommand           `command:"version" description:"Print version information"`
	Template          templateCommand          `command:"template" description:"Print built-in AsciiDoc template"`
	SchemaToAsciidoc  schemaToAsciidocCommand  `command:"schema2adoc" description:"Render schema fragment as annotated example listing"`
	OpenAPIToAsciidoc openAPIToAsciidocCommand `command:"openapi2adoc" description:"Render OpenAPI document operations to AsciiDoc"`
}

// listingFlags groups example listing flags shared by render commands.
type listingFlags struct {
	Numbered bool  `short:"n" long:"numbered" description:"Emit numbered callouts (<1>, <2>) instead of <.>"`
	Seed     int64 `short:"s" long:"seed" description:"Seed for reproducible example values; date-time examples use Unix epoch"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template" choice:"asciidoc" default:"asciidoc"`
}

// schemaToAsciidocCommand renders a single schema fragment.
type schemaToAsciidocCommand struct {
	runner *cliRunner
	Args   struct {
		Input  string `positional-arg-name:"input" description:"Input schema file, JSON or YAML (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Name  string `short:"N" long:"name" description:"Render root value as named member"`
	Icons bool   `short:"i" long:"icons" description:"Use AsciiDoc icons for required and nullable marks"`
	Raw   bool   `short:"r" long:"raw" description:"Print example and annotations without source block delimiters"`

	ListingFlags listingFlags `group:"Listing"`
}

// Execute runs schema2adoc subcommand.
func (command *schemaToAsciidocCommand) Execute(_ []string) error {
	return command.runner.runSchemaToAsciidoc(schemaRenderOptions{
		Name:    command.Name,
		Icons:   command.Icons,
		Raw:     command.Raw,
		Listing: command.ListingFlags,
	}, command.Args.Input, command.Args.Output)
}

// filterFlags groups OpenAPI operation filters; lists are ';' separated.
type filterFlags struct {
	PathContains string `long:"path-contains" description:"Keep paths containing any of the substrings"`
	PathEndsWith string `long:"path-ends-with" description:"Keep paths ending with any of the suffixes"`
	Methods      string `long:"methods" description:"Keep operations with any of the HTTP methods"`
	Tags         string `long:"tags" description:"Keep operations with any of the tags"`
	OperationIDs string `long:"operation-ids" description:"Keep operations with any of the operation ids"`
	HTTPCodes    string `long:"http-codes" description:"Keep responses with any of the status codes"`
}

// layoutFlags groups OpenAPI output layout flags.
type layoutFlags struct {
	Labels          string `long:"labels" description:"Role tags printed before every operation line"`
	NoHeadings      bool   `long:"no-headings" description:"Do not print operation headings"`
	NoParameters    bool   `long:"no-parameters" description:"Do not print parameter tables"`
	NoRequestBodies bool   `long:"no-request-bodies" description:"Do not print request body listings"`
	NoResponses     bool   `long:"no-responses" description:"Do not print responses table"`
	Collapsible     bool   `long:"collapsible" description:"Wrap operation details into collapsible block"`
	Tabbed          bool   `long:"tabbed" description:"Split request and response parts into tabs"`
	Partials        bool   `long:"partials" description:"Emit optional partial include directives"`
	TemplatePath    string `short:"f" long:"template-file" description:"Path to custom AsciiDoc template (.gotmpl)"`
}

// openAPIToAsciidocCommand renders an OpenAPI document.
type openAPIToAsciidocCommand struct {
	runner *cliRunner
	Args   struct {
		Source string `positional-arg-name:"source" description:"OpenAPI document file path or http(s) URL" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	Timeout time.Duration `long:"timeout" description:"Timeout for loading remote document" default:"30s"`

	FilterFlags  filterFlags  `group:"Filters"`
	LayoutFlags  layoutFlags  `group:"Layout"`
	ListingFlags listingFlags `group:"Listing"`
}

// Execute runs openapi2adoc subcommand.
func (command *openAPIToAsciidocCommand) Execute(_ []string) error {
	return command.runner.runOpenAPIToAsciidoc(
		command.FilterFlags,
		command.LayoutFlags,
		command.ListingFlags,
		command.Timeout,
		command.Args.Source,
		command.Args.Output,
	)
}

// templateCommand exports built-in AsciiDoc template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// schemaRenderOptions configures schema2adoc flow.
type schemaRenderOptions struct {
	Name    string
	Icons   bool
	Raw     bool
	Listing listingFlags
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
	options     *cliOptions
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "oasdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// logger creates component logger honoring global verbosity flags.
func (runner *cliRunner) logger(component string) *slog.Logger {
	level := logging.LevelWarn
	if runner.options != nil {
		level = logging.LevelFor(runner.options.Verbose, runner.options.Quiet)
	}

	return logging.NewLoggerFactory(runner.stderr, level).CreateLogger(component)
}

// renderOptions converts listing flags into core render options.
func (lf listingFlags) renderOptions(labels oasdoc.Labels) oasdoc.RenderOptions {
	opt := oasdoc.RenderOptions{Labels: labels}
	if lf.Numbered {
		opt.Callouts = oasdoc.CalloutNumbered
	}

	if lf.Seed != 0 {
		opt.Generator = oasdoc.NewSeededGenerator(lf.Seed, time.Unix(0, 0).UTC())
	}

	return opt
}

// runSchemaToAsciidoc renders one schema fragment and writes listing to stdout or file.
func (runner *cliRunner) runSchemaToAsciidoc(options schemaRenderOptions, inputPath, outputPath string) error {
	logger := runner.logger("schema2adoc")

	data, source, err := runner.readSchemaInput(inputPath)
	if err != nil {
		return fmt.Errorf("read schema input: %w", err)
	}

	fragment, err := oasdoc.ParseFragment(data)
	if err != nil {
		return fmt.Errorf("parse schema %s: %w", source, err)
	}

	node, err := oasdoc.Build(strings.TrimSpace(options.Name), fragment, nil)
	if err != nil {
		return fmt.Errorf("build schema %s: %w", source, err)
	}

	if node == nil {
		return fmt.Errorf("build schema %s: %w", source, oasdoc.ErrMissingDiscriminator)
	}

	labels := oasdoc.DefaultLabels()
	if options.Icons {
		labels = oasdoc.AsciidocLabels()
	}

	listing := oasdoc.NewRenderer(options.Listing.renderOptions(labels)).Render(node, true)
	logging.Trace(logger, "schema rendered", "source", source, "lines", len(listing.Example), "annotations", len(listing.Annotations))

	rendered := listing.Text() + "\n"
	if !options.Raw {
		rendered = formatSourceBlock(listing)
	}

	return runner.writeOutput(outputPath, rendered, "listing")
}

// formatSourceBlock wraps listing into AsciiDoc json source block.
func formatSourceBlock(listing oasdoc.Listing) string {
	var out strings.Builder
	out.WriteString("[source,json]\n----\n")
	for _, line := range listing.Example {
		out.WriteString(line)
		out.WriteByte('\n')
	}

	out.WriteString("----\n")
	for _, line := range listing.Annotations {
		out.WriteString(line)
		out.WriteByte('\n')
	}

	return out.String()
}

// runOpenAPIToAsciidoc renders OpenAPI document and writes result to stdout or file.
func (runner *cliRunner) runOpenAPIToAsciidoc(filter filterFlags, layout layoutFlags, listing listingFlags, timeout time.Duration, source, outputPath string) error {
	logger := runner.logger("openapi2adoc")

	opt := openapi.Options{
		PathContains:      openapi.SplitList(filter.PathContains),
		PathEndsWith:      openapi.SplitList(filter.PathEndsWith),
		Methods:           openapi.SplitList(filter.Methods),
		Tags:              openapi.SplitList(filter.Tags),
		OperationIDs:      openapi.SplitList(filter.OperationIDs),
		HTTPCodes:         openapi.SplitList(filter.HTTPCodes),
		Labels:            openapi.SplitList(layout.Labels),
		HideHeadings:      layout.NoHeadings,
		HideParameters:    layout.NoParameters,
		HideRequestBodies: layout.NoRequestBodies,
		HideResponses:     layout.NoResponses,
		Collapsible:       layout.Collapsible,
		Tabbed:            layout.Tabbed,
		Partials:          layout.Partials,
		Render:            listing.renderOptions(oasdoc.AsciidocLabels()),
		Logger:            logger,
	}

	if layout.TemplatePath != "" {
		customTemplate, err := os.ReadFile(layout.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", layout.TemplatePath, err)
		}

		opt.TemplateText = string(customTemplate)
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	loader := openapi.NewLoader(runner.logger("openapi"))
	rendered, err := openapi.RenderSource(ctx, loader, strings.TrimSpace(source), opt)
	if err != nil {
		return fmt.Errorf("render openapi document: %w", err)
	}

	return runner.writeOutput(outputPath, rendered, "asciidoc")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := openapi.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, tpl, "template")
}

// writeOutput writes rendered text to stdout or file.
func (runner *cliRunner) writeOutput(outputPath, text, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// readSchemaInput reads schema from file path or stdin and returns source marker.
func (runner *cliRunner) readSchemaInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read schema file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read schema from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read schema from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.Template.runner = runner
	options.SchemaToAsciidoc.runner = runner
	options.OpenAPIToAsciidoc.runner = runner
	runner.options = options

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in AsciiDoc template text.
Use it as a starting point for a custom template file.

Examples:
> $ %s template > asciidoc.adoc.gotmpl
> $ %s template templates/api.adoc.gotmpl
`, programName, programName)),
		"schema2adoc": strings.TrimSpace(fmt.Sprintf(`
Render one schema (JSON or YAML) as JSON example with callout annotations.
Reads schema from file argument or stdin; writes listing to file argument or stdout.

Examples:
> $ %s schema2adoc pet.yaml > pet.adoc
> $ cat pet.json | %s schema2adoc --numbered --seed 1 --name pet
`, programName, programName)),
		"openapi2adoc": strings.TrimSpace(fmt.Sprintf(`
Render OpenAPI v3 operations as AsciiDoc sections with request and response examples.
Source is a file path or http(s) URL. List filters take ';' separated values.

Examples:
> $ %s openapi2adoc openapi.yaml api.adoc
> $ %s openapi2adoc --tags 'pets;admin' --methods get --collapsible https://example.com/openapi.yaml
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata.
func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
