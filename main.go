package main

import "github.com/crxtools/go-crx/cmd"

func main() {
	cmd.Execute()
}
