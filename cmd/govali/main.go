// Command govali validates YAML or JSON documents against a declarative rule set.
//
// Usage:
//
//	govali check -rules person.yaml [-in doc.json|-] [-fail-fast] [-format text|json] [-lang en|ja]
//	govali rules
//
// Exit status is 0 when the document is valid, 1 when it has validation failures and 2 on
// usage or configuration errors. Defaults come from GOVALI_FORMAT, GOVALI_LANG,
// GOVALI_FAIL_FAST and GOVALI_LOG_LEVEL, optionally set in a .env file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/govali"
	"github.com/reoring/govali/i18n"
	"github.com/reoring/govali/ruleset"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2

	formatText = "text"
	formatJSON = "json"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "govali\n\nUsage:\n  govali check -rules <file> [-in <file>|-] [-in-format yaml|json] [-fail-fast] [-format text|json] [-lang en|ja] [-env .env]\n  govali rules")
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "check":
		return checkCmd(args[1:], stdin, stdout, stderr)
	case "rules":
		for _, n := range ruleset.Names() {
			fmt.Fprintln(stdout, n)
		}
		return exitOK
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func checkCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		rulesPath string
		inPath    string
		inFormat  string
		envFile   string
		failFast  bool
		format    string
		lang      string
	)
	fs.StringVar(&rulesPath, "rules", "", "rule set file (.yaml, .yml or .json)")
	fs.StringVar(&inPath, "in", "-", "document to validate, - for stdin")
	fs.StringVar(&inFormat, "in-format", "", "document format (yaml or json); inferred from -in when empty")
	fs.StringVar(&envFile, "env", ".env", "optional dotenv file with GOVALI_* defaults")
	fs.BoolVar(&failFast, "fail-fast", false, "stop at the first failing field")
	fs.StringVar(&format, "format", "", "output format: text or json")
	fs.StringVar(&lang, "lang", "", "message language: en or ja")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if rulesPath == "" {
		fmt.Fprintln(stderr, "govali: -rules is required")
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(envFile)
	if err != nil {
		return fail(stderr, err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fail-fast":
			cfg.FailFast = failFast
		case "format":
			cfg.Format = format
		case "lang":
			cfg.Lang = lang
		}
	})
	if err := cfg.validate(); err != nil {
		return fail(stderr, err)
	}

	logger, err := newLogger(cfg.LogLevel, zapcore.AddSync(stderr))
	if err != nil {
		return fail(stderr, err)
	}
	defer func() { _ = logger.Sync() }()
	i18n.SetLanguage(cfg.Lang)

	set, err := ruleset.Load(rulesPath)
	if err != nil {
		return fail(stderr, err)
	}
	opts := []govali.Option{govali.WithLogger(logger)}
	if cfg.FailFast {
		opts = append(opts, govali.WithStrategy(govali.FailFast))
	}
	v, err := set.Compile(opts...)
	if err != nil {
		return fail(stderr, err)
	}

	doc, err := readDocument(inPath, inFormat, stdin)
	if err != nil {
		return fail(stderr, err)
	}
	logger.Info("validating document",
		zap.String("rules", rulesPath),
		zap.String("input", inPath),
		zap.Stringer("strategy", v.Strategy()),
	)
	res, err := v.Validate(doc)
	if err != nil {
		return fail(stderr, err)
	}

	if err := report(stdout, cfg.Format, res); err != nil {
		return fail(stderr, err)
	}
	if res.HasFailures() {
		return exitInvalid
	}
	return exitOK
}

// readDocument decodes the input. YAML is the default since it also accepts JSON.
func readDocument(path, format string, stdin io.Reader) (ruleset.Document, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	f := ruleset.FormatYAML
	switch {
	case format != "":
		f = ruleset.Format(format)
	case path != "-":
		if inferred, err := ruleset.FormatFromPath(path); err == nil {
			f = inferred
		}
	}
	return ruleset.DecodeDocument(data, f)
}

func report(w io.Writer, format string, res *govali.Results) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	if !res.HasFailures() {
		_, err := fmt.Fprintf(w, "OK: %s\n", res.Target())
		return err
	}
	_, err := io.WriteString(w, res.LocalizedMessage())
	return err
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "govali: %v\n", err)
	return exitUsage
}
