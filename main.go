package main

import "resxgen/internal/cli"

func main() {
	cli.Execute()
}
