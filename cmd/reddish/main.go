package main

import "github.com/kbukum/reddish/internal/cli"

func main() {
	cli.Execute()
}
