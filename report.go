package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// renderReport formats the aggregate report as plain text. The same string
// is written to stdout, a file, or the clipboard, so it carries no color
// codes.
func renderReport(report *Report, directory string) string {
	var builder strings.Builder
	builder.WriteString("\n")
	for _, ec := range report.Extensions() {
		builder.WriteString(fmt.Sprintf("Total lines for files with extension %s: %d\n", ec.Extension, ec.Lines))
	}
	builder.WriteString(fmt.Sprintf("\nTotal lines in directory %s: %d\n", directory, report.TotalLines))
	return builder.String()
}

// printReport writes the report to stdout with the counts tinted. color
// disables itself when stdout is not a terminal, so piped output stays
// plain.
func printReport(report *Report, directory string) {
	counts := color.New(color.FgCyan, color.Bold)
	total := color.New(color.FgGreen, color.Bold)

	fmt.Println()
	for _, ec := range report.Extensions() {
		fmt.Printf("Total lines for files with extension %s: %s\n", ec.Extension, counts.Sprint(ec.Lines))
	}
	fmt.Printf("\nTotal lines in directory %s: %s\n", directory, total.Sprint(report.TotalLines))
}
