package main

import "github.com/aalvaropc/contrastly/internal/cli"

func main() {
	cli.Execute()
}
