package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/grindlemire/boxlayout/internal/fixture"
)

// runCheck implements the check subcommand.
// It parses documents and builds their trees without computing layouts.
func runCheck(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectDocuments(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no layout documents found")
	}

	if *verbose {
		fmt.Fprintf(stdout, "Checking %d document(s)\n", len(files))
	}

	var errorCount int
	for _, path := range files {
		if *verbose {
			fmt.Fprintf(stdout, "Checking %s\n", path)
		}
		if err := checkFile(path); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d document(s) had errors", errorCount)
	}

	if *verbose {
		fmt.Fprintf(stdout, "All %d document(s) passed checks\n", len(files))
	}
	return nil
}

// checkFile decodes a document and builds its tree.
func checkFile(path string) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}
	_, err = fixture.Build(doc)
	return err
}
