package main

import "github.com/daypulse/daypulse/internal/cli"

func main() {
	cli.Execute()
}
