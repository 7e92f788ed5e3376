package main

import "librarylink/internal/cli"

func main() {
	cli.Execute()
}
