// Package main provides the CLI for computing box layouts from documents.
//
// Usage:
//
//	boxlayout compute [options] [path...]   Compute and print layouts
//	boxlayout check [path...]               Validate documents
//	boxlayout help                          Show help
//
// Examples:
//
//	boxlayout compute ./...                  Every document under the current directory
//	boxlayout compute -format yaml panel.yaml
//	boxlayout check ./layouts
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

const usage = `boxlayout - flexbox, grid and block layout for trees of boxes

Usage:
  boxlayout <command> [options] [path...]

Commands:
  compute     Compute layouts for .yaml, .yml and .toml documents
  check       Validate documents without computing
  version     Print version information
  help        Show this help message

Compute options:
  -format yaml|text   Output format (default from boxlayout.toml, else text)
  -no-round           Report exact, unrounded positions and sizes
  -config path        Config file (default ./boxlayout.toml, optional)
  -debug path         Append debug logging to path

Examples:
  boxlayout compute ./...                 Recursively process all documents
  boxlayout compute -format yaml a.yaml   Print layouts as YAML
  boxlayout check ./layouts               Validate documents in a directory

Setting BOXLAYOUT_DEBUG=path also enables debug logging.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stderr, usage)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "compute":
		err = runCompute(args, stdout, stderr)
	case "check":
		err = runCheck(args, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "boxlayout version %s\n", version)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stderr, usage)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
