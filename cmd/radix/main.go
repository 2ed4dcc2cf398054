package main

import "github.com/govalues/radix/internal/cli"

func main() {
	cli.Execute()
}
