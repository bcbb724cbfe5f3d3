// Package wrapunion provides a go/analysis based analyzer that keeps wrap()
// declaration lists consistent with the unwrap() calls inside their bodies.
//
// The checked idiom is a Result-style helper pair: wrap(doThis, doThat)
// takes the fallible functions the body is allowed to unwrap and returns a
// runner that is immediately invoked with the body literal. The analyzer
// verifies the declared set and the actually-unwrapped set agree in both
// directions and offers a suggested fix regenerating the list when they
// diverge.
package wrapunion

import (
	"errors"
	"flag"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/wrapunion/wrapunion/internal/checker"
	"github.com/wrapunion/wrapunion/internal/config"
	"github.com/wrapunion/wrapunion/internal/diag"
	"github.com/wrapunion/wrapunion/internal/directive/ignore"
)

// Defaults for the configurable identifier names.
const (
	DefaultWrapName   = "wrap"
	DefaultUnwrapName = "unwrap"
)

// Flags for the analyzer.
var (
	wrapNameFlag   string
	unwrapNameFlag string
	configPath     string
)

func init() {
	Analyzer.Flags.StringVar(&wrapNameFlag, "wrap-name", "",
		"identifier of the wrap helper (default \"wrap\")")
	Analyzer.Flags.StringVar(&unwrapNameFlag, "unwrap-name", "",
		"identifier of the unwrap helper (default \"unwrap\")")
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"path to a YAML config file with wrap-name/unwrap-name keys (explicit flags win)")
}

// Analyzer is the main analyzer for wrapunion.
var Analyzer = &analysis.Analyzer{
	Name:     "wrapunion",
	Doc:      "checks that wrap() declares exactly the functions unwrapped in its body",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	wrapName, unwrapName, err := resolveNames()
	if err != nil {
		return nil, err
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	reporter := &diag.Reporter{Pass: pass, Ignores: ignoreMaps}
	checker.New(wrapName, unwrapName, reporter, skipFiles).Run(pass, insp)

	// Report ignore directives that suppressed nothing
	reportUnusedIgnores(pass, ignoreMaps)

	return nil, nil
}

// resolveNames determines the wrap/unwrap identifiers: explicit flags first,
// then the config file, then the literal defaults.
func resolveNames() (wrapName, unwrapName string, err error) {
	wrapName, unwrapName = wrapNameFlag, unwrapNameFlag

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return "", "", err
		}
		if wrapName == "" {
			wrapName = cfg.WrapName
		}
		if unwrapName == "" {
			unwrapName = cfg.UnwrapName
		}
	}

	if wrapName == "" {
		wrapName = DefaultWrapName
	}
	if unwrapName == "" {
		unwrapName = DefaultUnwrapName
	}

	return wrapName, unwrapName, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// reportUnusedIgnores reports any ignore directives that were not used.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map) {
	known := make(map[ignore.Name]bool)
	for _, kind := range diag.Kinds() {
		known[ignore.Name(kind)] = true
	}

	for _, ignoreMap := range ignoreMaps {
		for _, unused := range ignoreMap.UnusedEntries(known) {
			if len(unused.Names) == 0 {
				pass.Reportf(unused.Pos, "unused wrapunion:ignore directive")
				continue
			}
			names := make([]string, len(unused.Names))
			for i, n := range unused.Names {
				names[i] = string(n)
			}
			pass.Reportf(unused.Pos, "unused wrapunion:ignore directive for kind(s): %s", strings.Join(names, ", "))
		}
	}
}
