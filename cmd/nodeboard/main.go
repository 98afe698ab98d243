package main

import (
	"github.com/rileyhilliard/nodeboard/internal/cli"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=0.1.0 -X main.commit=abc123 -X main.date=2026-03-10"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	cli.Execute()
}
