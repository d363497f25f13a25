package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opensubtitles/subrelease/internal/config"
	"github.com/opensubtitles/subrelease/internal/logging"
	"github.com/opensubtitles/subrelease/internal/reporter"
	"github.com/opensubtitles/subrelease/internal/scanner"
)

var (
	verbose         bool
	releaseNameMode bool
	rawOutput       bool

	// Version information (set via -ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const exampleConfig = `[scan]
extensions = [".srt", ".sub", ".ssa", ".ass", ".smi", ".mpl", ".txt", ".vtt"]
workers = 0  # 0 = one worker per CPU

[report]
directory = ""  # empty = ~/.local/share/subrelease/scan_results

# Custom language table entries:
# [[languages]]
# key = "tl"
# code2 = "tl"
# code3 = "tgl"
# name = "Tagalog"
`

var rootCmd = &cobra.Command{
	Use:   "subrelease",
	Short: "Extract release names from subtitle filenames",
	Long: `subrelease recovers the release name a subtitle file belongs to by
stripping trailing language codes, regional variants, full language names,
disc markers, hearing-impaired markers and the subtitle extension.

The release name is what matches a subtitle to its video file, independent
of which language or disc variant the subtitle is.`,
}

var extractCmd = &cobra.Command{
	Use:   "extract <filename>...",
	Short: "Extract the release name from one or more subtitle filenames",
	Args:  cobra.MinimumNArgs(1),
	Run:   runExtract,
}

var scanCmd = &cobra.Command{
	Use:   "scan <directory>...",
	Short: "Scan directories for subtitle files and report their releases",
	Args:  cobra.MinimumNArgs(1),
	Run:   runScan,
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Show the active language table",
	Run:   runLanguages,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration file location and contents",
	Run:   runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("subrelease %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	extractCmd.Flags().BoolVar(&releaseNameMode, "release-name", false, "treat input as a bare release name (skip extension removal)")
	extractCmd.Flags().BoolVar(&rawOutput, "raw", false, "print the raw extractor output, leading artifact included")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) {
	logger := logging.New(verbose)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	table := cfg.Table()

	out := cmd.OutOrStdout()
	for _, filename := range args {
		name := extractName(filename, table, releaseNameMode, rawOutput)
		logger.Debug("extracted", "input", filename, "release", name)
		fmt.Fprintln(out, name)
	}
}

func runScan(cmd *cobra.Command, args []string) {
	logger := logging.New(verbose)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	// Graceful shutdown on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scanConfig := scanner.Config{
		Workers:    cfg.Scan.Workers,
		Extensions: cfg.Scan.Extensions,
	}

	logger.Info("scanning", "paths", args)
	results, err := scanner.Scan(ctx, args, cfg.Table(), scanConfig)
	if err != nil {
		logger.Error("scan failed", "err", err)
		os.Exit(1)
	}

	report := reporter.New(args, results)

	reportPath, err := reporter.Generate(report, cfg.Report.Directory)
	if err != nil {
		logger.Error("failed to write report", "err", err)
		os.Exit(1)
	}
	jsonPath, err := reporter.WriteJSON(report, cfg.Report.Directory)
	if err != nil {
		logger.Error("failed to write JSON report", "err", err)
		os.Exit(1)
	}

	fmt.Println(reporter.Summary(report))
	fmt.Printf("Report saved to: %s\n", reportPath)
	logger.Debug("json report", "path", jsonPath)
}

func runLanguages(cmd *cobra.Command, args []string) {
	logger := logging.New(verbose)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	table := cfg.Table()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-5s %-6s %-6s %-20s %s\n", "KEY", "CODE2", "CODE3", "NAME", "DISPLAY")
	for _, key := range table.Keys() {
		e := table[key]
		fmt.Fprintf(out, "%-5s %-6s %-6s %-20s %s\n", key, e.Code2, e.Code3, e.Name, e.DisplayName)
	}
}

func runConfig(cmd *cobra.Command, args []string) {
	configFile, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Config file: %s\n\n", configFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		fmt.Println("Config file does not exist yet. Example:")
		fmt.Print(exampleConfig, "\n")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}
