package main

import (
	"os"
	"os/exec"
)

// Docs renders the site's HTML pages into Word documents.
func Docs() error {
	return runCLI("build")
}

// Sync reads edited Word documents back into the content store without
// prompting; unmapped documents are skipped.
func Sync() error {
	return runCLI("extract", "--non-interactive")
}

// runCLI runs a docbridge subcommand from source.
func runCLI(args ...string) error {
	cmd := exec.Command("go", append([]string{"run", cmdPkg}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}
