package main

import "github.com/lumen-network/lumen/internal/cli"

func main() {
	cli.Execute()
}
