package main

import (
	"fmt"
	"os"

	"github.com/pthm/domwire/lib/check"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "check":
		ok, err := runCheck(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
	case "version":
		fmt.Printf("domwire version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`domwire - declarative component wiring for element trees

Usage:
  domwire <command> [arguments]

Commands:
  check [files]         Verify data-action and data-target declarations
  version               Print version
  help                  Show this help

Options for check:
  --manifest <file>     TOML manifest of component definitions; enables
                        method and target verification

Examples:
  domwire check index.html
  domwire check --manifest domwire.toml templates/*.html`)
}

func runCheck(args []string) (bool, error) {
	var manifestPath string
	var files []string

	for i := 0; i < len(args); i++ {
		if args[i] == "--manifest" {
			if i+1 >= len(args) {
				return false, fmt.Errorf("--manifest requires a file argument")
			}
			i++
			manifestPath = args[i]
			continue
		}
		files = append(files, args[i])
	}
	if len(files) == 0 {
		return false, fmt.Errorf("check requires at least one markup file")
	}

	var manifest *check.Manifest
	if manifestPath != "" {
		m, err := check.LoadManifest(manifestPath)
		if err != nil {
			return false, err
		}
		manifest = m
	}

	checker := check.New(manifest)
	clean := true
	for _, file := range files {
		problems, err := checker.CheckFile(file)
		if err != nil {
			return false, err
		}
		for _, p := range problems {
			clean = false
			fmt.Fprintln(os.Stderr, p)
		}
	}
	return clean, nil
}
