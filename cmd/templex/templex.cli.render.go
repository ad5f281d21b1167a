package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/itsatony/go-templex"
	"github.com/spf13/pflag"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	location     string
	dataJSON     string
	dataFile     string
	outputPath   string
	driver       string
	root         string
	maxDepth     int
	strict       bool
	verbose      bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(stdout, HelpRenderUsage)
			return ExitCodeSuccess
		}
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	data, err := loadRenderData(cfg)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return ExitCodeInputError
	}

	source, err := templex.OpenSource(cfg.driver, cfg.root)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgOpenSourceFailed, err)
		return ExitCodeInputError
	}
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	engine, err := templex.New(
		templex.WithSource(source),
		templex.WithMaxDepth(cfg.maxDepth),
		templex.WithRaiseOnError(cfg.strict),
		templex.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineFailed, err)
		return ExitCodeUsageError
	}

	ctx := context.Background()
	input := templex.TemplateInput{Location: cfg.location}
	if cfg.templatePath != "" {
		text, err := readInput(cfg.templatePath, stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return ExitCodeInputError
		}
		input = templex.TemplateInput{Text: string(text)}
	}

	tmpl, err := engine.NewTemplate(ctx, input)
	if err != nil {
		// Empty template text is not an error for the CLI: it renders to nothing.
		if input.Location == "" {
			return writeRendered(cfg.outputPath, "", stdout, stderr)
		}
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadFailed, err)
		return ExitCodeInputError
	}

	out, err := tmpl.Render(ctx, data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	return writeRendered(cfg.outputPath, out, stdout, stderr)
}

func writeRendered(path, out string, stdout, stderr io.Writer) int {
	if err := writeOutput(path, []byte(out), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := pflag.NewFlagSet(CmdNameRender, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &renderConfig{}
	fs.StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", "")
	fs.StringVarP(&cfg.location, FlagLocation, FlagLocationShort, "", "")
	fs.StringVarP(&cfg.dataJSON, FlagData, FlagDataShort, "", "")
	fs.StringVarP(&cfg.dataFile, FlagDataFile, FlagDataFileShort, "", "")
	fs.StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.driver, FlagDriver, FlagDefaultDriver, "")
	fs.StringVar(&cfg.root, FlagRoot, "", "")
	fs.IntVar(&cfg.maxDepth, FlagMaxDepth, templex.DefaultMaxDepth, "")
	fs.BoolVar(&cfg.strict, FlagStrictMode, false, "")
	fs.BoolVarP(&cfg.verbose, FlagVerbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case cfg.templatePath == "" && cfg.location == "":
		return nil, errors.New(ErrMsgMissingTemplate)
	case cfg.templatePath != "" && cfg.location != "":
		return nil, errors.New(ErrMsgBothTemplates)
	case cfg.dataJSON != "" && cfg.dataFile != "":
		return nil, errors.New(ErrMsgBothDataInputs)
	}

	return cfg, nil
}

func loadRenderData(cfg *renderConfig) (map[string]any, error) {
	if cfg.dataFile != "" {
		return templex.LoadDataFile(cfg.dataFile)
	}
	return templex.ParseData([]byte(cfg.dataJSON), templex.DataFormatJSON)
}
