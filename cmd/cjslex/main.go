package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"cjslex/internal/cliconfig"
	"cjslex/internal/report"
	"cjslex/lexer"
)

var (
	currentDir, _ = os.Getwd()
	rootCmd       = &cobra.Command{
		Use:   "cjslex",
		Short: "Discover the named exports and re-exports of CommonJS modules",
		Long: `A single-pass static analyzer for CommonJS JavaScript modules.
Reports each module's named exports and re-exported specifiers without executing
code or building an AST, and flags files that are actually ES modules.`,
		Version: lexer.Version,
	}
)

var docsCmd = &cobra.Command{
	Use:   "doc-gen",
	Short: "Generate CLI documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := doc.GenMarkdownTree(rootCmd, "./docs")
		if err != nil {
			log.Fatal(err)
		}
		return nil
	},
}

// ---------------- shared flags ----------------

var (
	configPath   string
	outputFormat string
	zeroExitCode bool
)

func addSharedFlags(command *cobra.Command) {
	command.Flags().StringVar(&configPath, "config", "",
		"Path to cjslex.config.jsonc (default: cjslex.config.jsonc in the working directory)")
	command.Flags().StringVarP(&outputFormat, "format", "f", report.FormatText,
		"Output format: text, json or yaml")
	command.Flags().BoolVar(&zeroExitCode, "zero-exit-code", false,
		"Use this flag to always return zero exit code")
}

func loadConfigForCwd(cwd string) (cliconfig.Config, error) {
	if configPath != "" {
		return cliconfig.LoadConfig(configPath)
	}
	return cliconfig.LoadConfig(cwd)
}

// scanFile reads and scans one file, honoring the ESM policy: with the warn
// policy an ESM detection degrades to a stderr warning and an empty result.
func scanFile(filePath string, config cliconfig.Config) report.FileReport {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return report.FromError(filePath, err)
	}
	if config.MaxFileSize > 0 && int64(len(content)) > config.MaxFileSize {
		slog.Warn("skipping large file", slog.String("file", filePath), slog.Int("size", len(content)))
		return report.FileReport{File: filePath}
	}
	result, err := lexer.Parse(content)
	if err != nil {
		if perr, ok := err.(*lexer.Error); ok && config.ESMPolicy == cliconfig.ESMPolicyWarn && isESMKind(perr.Kind) {
			fmt.Fprintln(os.Stderr, color.YellowString("warning: %s looks like an ES module (%s)", filePath, perr.Kind))
			return report.FileReport{File: filePath}
		}
		return report.FromError(filePath, err)
	}
	return report.FromResult(filePath, result)
}

func isESMKind(kind lexer.ErrorKind) bool {
	switch kind {
	case lexer.ErrUnexpectedESMImport, lexer.ErrUnexpectedESMExport, lexer.ErrUnexpectedESMImportMeta:
		return true
	}
	return false
}

func failedCount(reports []report.FileReport) int {
	count := 0
	for _, fr := range reports {
		if fr.Error != "" {
			count++
		}
	}
	return count
}

// ---------------- scan ----------------

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Scan the given files and print their exports",
	Long: `Scans each file as a CommonJS module and prints its named exports and
re-exported module specifiers with source line numbers.`,
	Example: "cjslex scan lib/index.cjs dist/main.js --format json",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfigForCwd(currentDir)
		if err != nil {
			return err
		}

		reports := make([]report.FileReport, 0, len(args))
		for _, filePath := range args {
			reports = append(reports, scanFile(filePath, config))
		}

		if err := report.Write(os.Stdout, reports, outputFormat); err != nil {
			return err
		}

		if count := failedCount(reports); count > 0 {
			for _, fr := range reports {
				if fr.Error != "" {
					fmt.Fprintln(os.Stderr, color.RedString("error: %s: %s", fr.File, fr.Error))
				}
			}
			if !zeroExitCode {
				os.Exit(count)
			}
		}
		return nil
	},
}

// ---------------- batch ----------------

var (
	batchCwd     string
	batchCount   bool
	batchVerbose bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Scan every CommonJS file under a directory",
	Long: `Walks the working directory for .js and .cjs files, applies the config's
include/exclude globs, and scans everything that remains. Files are scanned
concurrently; output order is stable.`,
	Example: "cjslex batch --cwd packages/server --format yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		if batchVerbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		cwd := batchCwd
		if !filepath.IsAbs(cwd) {
			cwd = filepath.Join(currentDir, cwd)
		}

		config, err := loadConfigForCwd(cwd)
		if err != nil {
			return err
		}

		includeGlobs := cliconfig.CreateGlobMatchers(config.Include, cwd)
		excludeGlobs := cliconfig.CreateGlobMatchers(config.Exclude, cwd)

		files := collectFiles(cwd, nil, includeGlobs, excludeGlobs)
		slog.Debug("collected files", slog.Int("count", len(files)), slog.String("cwd", cwd))

		if batchCount {
			fmt.Println(len(files))
			return nil
		}

		reports := make([]report.FileReport, 0, len(files))

		var wg sync.WaitGroup
		var mu sync.Mutex

		for _, filePath := range files {
			wg.Add(1)
			go func(filePath string) {
				fr := scanFile(filePath, config)
				slog.Debug("scanned file",
					slog.String("file", filePath),
					slog.Int("exports", len(fr.Exports)),
					slog.Int("reexports", len(fr.Reexports)))
				mu.Lock()
				reports = append(reports, fr)
				mu.Unlock()
				wg.Done()
			}(filePath)
		}

		wg.Wait()

		if err := report.Write(os.Stdout, reports, outputFormat); err != nil {
			return err
		}
		fmt.Println(report.Summary(reports))

		if count := failedCount(reports); count > 0 && !zeroExitCode {
			os.Exit(count)
		}
		return nil
	},
}

var scannableExts = map[string]struct{}{
	".js":  {},
	".cjs": {},
}

func collectFiles(directory string, existingFiles []string, includeGlobs, excludeGlobs []cliconfig.GlobMatcher) []string {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return existingFiles
	}

	for _, entry := range entries {
		entryName := entry.Name()
		entryFilePath := filepath.Join(directory, entryName)

		if entry.IsDir() {
			if entryName == "node_modules" || entryName == ".git" {
				continue
			}
			if cliconfig.MatchesAnyGlobMatcher(entryFilePath, excludeGlobs) {
				continue
			}
			existingFiles = collectFiles(entryFilePath, existingFiles, includeGlobs, excludeGlobs)
			continue
		}

		if _, ok := scannableExts[filepath.Ext(entryName)]; !ok {
			continue
		}
		if len(includeGlobs) > 0 && !cliconfig.MatchesAnyGlobMatcher(entryFilePath, includeGlobs) {
			continue
		}
		if cliconfig.MatchesAnyGlobMatcher(entryFilePath, excludeGlobs) {
			continue
		}
		existingFiles = append(existingFiles, entryFilePath)
	}

	return existingFiles
}

// ---------------- doctor ----------------

var (
	doctorCwd         string
	doctorNodeVersion string
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the config and the project's engine constraint",
	Long: `Loads cjslex.config.jsonc, validates its globs and policy, and checks the
declared engines constraint against a target Node version.`,
	Example: "cjslex doctor --node-version 20.11.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd := doctorCwd
		if !filepath.IsAbs(cwd) {
			cwd = filepath.Join(currentDir, cwd)
		}

		config, err := loadConfigForCwd(cwd)
		if err != nil {
			fmt.Println(color.RedString("config: %v", err))
			os.Exit(1)
		}
		fmt.Println(color.GreenString("config: ok (esm_policy=%s)", config.ESMPolicy))

		if config.Engines == "" {
			fmt.Println("engines: no constraint declared")
			return nil
		}

		constraint, err := semver.NewConstraint(config.Engines)
		if err != nil {
			fmt.Println(color.RedString("engines: constraint '%s' is invalid: %v", config.Engines, err))
			os.Exit(1)
		}

		version, err := semver.NewVersion(doctorNodeVersion)
		if err != nil {
			fmt.Println(color.RedString("engines: node version '%s' is invalid: %v", doctorNodeVersion, err))
			os.Exit(1)
		}

		if !constraint.Check(version) {
			fmt.Println(color.RedString("engines: node %s does not satisfy '%s'", doctorNodeVersion, config.Engines))
			if !zeroExitCode {
				os.Exit(1)
			}
			return nil
		}

		fmt.Println(color.GreenString("engines: node %s satisfies '%s'", doctorNodeVersion, config.Engines))
		return nil
	},
}

func init() {
	// scan flags
	addSharedFlags(scanCmd)

	// batch flags
	addSharedFlags(batchCmd)
	batchCmd.Flags().StringVarP(&batchCwd, "cwd", "c", currentDir,
		"Working directory for the command")
	batchCmd.Flags().BoolVarP(&batchCount, "count", "n", false,
		"Only display the count of matching files")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false,
		"Log each scanned file")

	// doctor flags
	addSharedFlags(doctorCmd)
	doctorCmd.Flags().StringVarP(&doctorCwd, "cwd", "c", currentDir,
		"Working directory for the command")
	doctorCmd.Flags().StringVar(&doctorNodeVersion, "node-version", "20.0.0",
		"Node version to validate the engines constraint against")

	rootCmd.AddCommand(scanCmd, batchCmd, doctorCmd, docsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
