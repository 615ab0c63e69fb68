// Package main provides the entry point for the launchdash CLI.
//
// launchdash serves an interactive dashboard over historical launch records
// loaded once from a CSV file.
//
// Usage:
//
//	launchdash serve
//	launchdash report --site "KSC LC-39A" --low 2000 --high 5000
//
// See --help for all available options.
package main

func main() {
	Execute()
}
