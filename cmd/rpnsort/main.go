package main

import "github.com/aalvaropc/rpnsort/internal/cli"

func main() {
	cli.Execute()
}
