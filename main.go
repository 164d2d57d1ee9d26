package main

import "caid/internal/cli"

func main() {
	cli.Execute()
}
