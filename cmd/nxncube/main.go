package main

import "github.com/cubeforge/nxncube/internal/cli"

func main() {
	cli.Execute()
}
