package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LanguageInfo holds details about one language from a linguist-style
// languages.yml. Only the fields needed for extension lookup are parsed.
type LanguageInfo struct {
	Type       string   `yaml:"type"`
	Extensions []string `yaml:"extensions"`
	Filenames  []string `yaml:"filenames"`
}

// LanguageMap maps language names (e.g. "Go") to their details.
type LanguageMap map[string]LanguageInfo

// LoadedLanguageData holds the parsed language map plus an extension lookup
// index.
type LoadedLanguageData struct {
	Langs        LanguageMap
	extensionMap map[string]string
}

// loadLanguageData looks for languages.yml in the standard config locations
// and parses it. Missing file is an error the caller may treat as "rollup
// unavailable".
func loadLanguageData() (*LoadedLanguageData, error) {
	configPaths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(home, ".config", "linetally"))
	}
	configPaths = append(configPaths, ".")

	var langFilePath string
	for _, p := range configPaths {
		testPath := filepath.Join(p, "languages.yml")
		if _, err := os.Stat(testPath); err == nil {
			langFilePath = testPath
			break
		}
	}
	if langFilePath == "" {
		return nil, fmt.Errorf("languages.yml not found in standard config locations")
	}

	yamlFile, err := os.ReadFile(langFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading language file %s: %w", langFilePath, err)
	}
	return parseLanguageData(yamlFile)
}

func parseLanguageData(raw []byte) (*LoadedLanguageData, error) {
	var langs LanguageMap
	if err := yaml.Unmarshal(raw, &langs); err != nil {
		return nil, fmt.Errorf("error parsing language definitions: %w", err)
	}

	data := &LoadedLanguageData{
		Langs:        langs,
		extensionMap: make(map[string]string),
	}
	for langName, info := range langs {
		for _, ext := range info.Extensions {
			lowerExt := strings.ToLower(ext)
			// First language to claim an extension wins.
			if data.extensionMap[lowerExt] == "" {
				data.extensionMap[lowerExt] = langName
			}
		}
	}
	return data, nil
}

// LanguageForExtension resolves an extension bucket (e.g. ".go") to a
// language name.
func (ld *LoadedLanguageData) LanguageForExtension(ext string) (string, bool) {
	if ld == nil {
		return "", false
	}
	lang, ok := ld.extensionMap[strings.ToLower(ext)]
	return lang, ok
}

// LanguageCount is one row of the per-language rollup.
type LanguageCount struct {
	Language string
	Lines    int
}

// languageRollup regroups the per-extension counts by language. Extensions
// with no known language (including the .noext bucket) fall under "Other".
func languageRollup(report *Report, ld *LoadedLanguageData) []LanguageCount {
	counts := make(map[string]int)
	var order []string
	for _, ec := range report.Extensions() {
		lang, ok := ld.LanguageForExtension(ec.Extension)
		if !ok {
			lang = "Other"
		}
		if _, seen := counts[lang]; !seen {
			order = append(order, lang)
		}
		counts[lang] += ec.Lines
	}

	out := make([]LanguageCount, 0, len(order))
	for _, lang := range order {
		out = append(out, LanguageCount{Language: lang, Lines: counts[lang]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Lines > out[j].Lines
	})
	return out
}

// renderLanguageRollup formats the rollup section appended to the report
// when --languages is set.
func renderLanguageRollup(rollup []LanguageCount) string {
	if len(rollup) == 0 {
		return ""
	}
	var builder strings.Builder
	builder.WriteString("\n")
	for _, lc := range rollup {
		builder.WriteString(fmt.Sprintf("Total lines for %s: %d\n", lc.Language, lc.Lines))
	}
	return builder.String()
}
