package main

import "github.com/acollard/mp-register/internal/cli"

func main() {
	cli.Execute()
}
