// Package main is the entry point for the tacklemetrics CLI tool, which
// derives tackle-quality metrics from player tracking data.
package main

import "github.com/calder/go-tackle-metrics/cmd"

func main() {
	cmd.Execute()
}
