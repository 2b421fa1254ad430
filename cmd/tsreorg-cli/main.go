package main

import "tsreorg/cmd/tsreorg-cli/cmd"

func main() {
	cmd.Execute()
}
