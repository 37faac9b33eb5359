package main

import "beast/internal/cli"

func main() {
	cli.Execute()
}
