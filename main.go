package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Filtering
	includePrefixes   []string
	includeExtensions []string
	excludePrefixes   []string
	excludeExtensions []string
	showHidden        bool
	noIgnore          bool
	maxDepth          int

	// Output
	outputFile      string
	copyToClipboard bool
	pdfOutputFile   string
	byLanguage      bool

	// Interactive Mode
	interactiveMode bool
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "linetally DIRECTORY",
	Short: "linetally counts newline-delimited lines per file extension in a directory tree.",
	Long: `linetally walks a directory tree (or a freshly cloned Git repository),
applies inclusion/exclusion rules on path prefixes and file extensions, and
reports line counts aggregated per extension plus a grand total.`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Conflicting axes are a configuration error, caught before any
		// scanning starts.
		if cmd.Flags().Changed("include") && cmd.Flags().Changed("exclude") {
			return fmt.Errorf("--include and --exclude are mutually exclusive")
		}
		if cmd.Flags().Changed("include-extensions") && cmd.Flags().Changed("exclude-extensions") {
			return fmt.Errorf("--include-extensions and --exclude-extensions are mutually exclusive")
		}

		// Determine the scan target: positional argument or interactive pick.
		var target string
		switch {
		case len(args) == 1:
			target = args[0]
		case interactiveMode:
			picked, err := runInteractiveFinder(showHidden)
			if err != nil {
				return fmt.Errorf("interactive mode: %w", err)
			}
			if picked == "" {
				return nil // user aborted
			}
			target = picked
		default:
			return fmt.Errorf("a directory to scan is required (or use --interactive)")
		}

		// A Git URL is cloned into a temp dir and counted there; the report
		// keeps the URL as its label.
		scanRoot := target
		if isGitURL(target) {
			tempDir, err := cloneGitRepo(target)
			if err != nil {
				return err
			}
			defer os.RemoveAll(tempDir)
			scanRoot = tempDir
		}

		cfg := ScanConfig{
			Root:              scanRoot,
			Includes:          includePrefixes,
			IncludeExtensions: includeExtensions,
			Excludes:          excludePrefixes,
			ExcludeExtensions: excludeExtensions,
			ShowHidden:        showHidden,
			NoIgnore:          noIgnore,
			MaxDepth:          maxDepth,
		}

		report, err := Scan(cfg)
		if err != nil {
			return err
		}

		var rollup []LanguageCount
		if byLanguage {
			langData, err := loadLanguageData()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: per-language rollup unavailable: %v\n", err)
			} else {
				rollup = languageRollup(report, langData)
			}
		}

		if pdfOutputFile != "" {
			if err := generatePDF(report, target, rollup, pdfOutputFile); err != nil {
				return err
			}
			fmt.Printf("Report saved to %s\n", pdfOutputFile)
			return nil
		}

		rendered := renderReport(report, target) + renderLanguageRollup(rollup)
		switch {
		case outputFile != "":
			if err := os.WriteFile(outputFile, []byte(rendered), 0644); err != nil {
				return fmt.Errorf("error writing to file %s: %w", outputFile, err)
			}
			fmt.Printf("Report saved to %s\n", outputFile)
		case copyToClipboard:
			if err := clipboard.WriteAll(rendered); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing to clipboard: %v\n", err)
				fmt.Print(rendered)
			} else {
				fmt.Println("Report copied to clipboard.")
			}
		default:
			printReport(report, target)
			fmt.Print(renderLanguageRollup(rollup))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Filtering
	rootCmd.Flags().StringSliceVarP(&includePrefixes, "include", "i", nil, "Path prefixes to include (relative to the scan root)")
	viper.BindPFlag("include", rootCmd.Flags().Lookup("include"))
	rootCmd.Flags().StringSliceVar(&includeExtensions, "include-extensions", nil, `Extensions to include (e.g. .go,.py)`)
	viper.BindPFlag("include_extensions", rootCmd.Flags().Lookup("include-extensions"))
	rootCmd.Flags().StringSliceVarP(&excludePrefixes, "exclude", "e", nil, "Path prefixes or directory names to exclude")
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	viper.BindPFlag("default_excludes", rootCmd.Flags().Lookup("exclude"))
	rootCmd.Flags().StringSliceVar(&excludeExtensions, "exclude-extensions", nil, "Extensions to exclude")
	viper.BindPFlag("exclude_extensions", rootCmd.Flags().Lookup("exclude-extensions"))
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "Count hidden files and directories")
	viper.BindPFlag("hidden", rootCmd.Flags().Lookup("hidden"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore file")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum directory depth to traverse (0 for no limit)")
	viper.BindPFlag("max_depth", rootCmd.Flags().Lookup("max-depth"))

	// Output
	rootCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the report to the specified file")
	viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Save the report as a PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))
	rootCmd.Flags().BoolVar(&byLanguage, "languages", false, "Add a per-language rollup (requires languages.yml)")
	viper.BindPFlag("languages", rootCmd.Flags().Lookup("languages"))

	// Interactive Mode
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the directory to scan with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	viper.SetDefault("hidden", false)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("max_depth", 0)
	viper.SetDefault("default_excludes", []string{
		".git",
		"node_modules",
		"target",
		"vendor",
	})
}

// initConfig reads in the config file and LINETALLY_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, ".config", "linetally"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LINETALLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	// The config file's default_excludes seed the exclude list when the flag
	// wasn't given explicitly.
	if !rootCmd.Flags().Changed("exclude") {
		excludePrefixes = viper.GetStringSlice("default_excludes")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
