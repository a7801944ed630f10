package main

import "overlay-config/internal/cli"

func main() {
	cli.Execute()
}
