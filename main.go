package main

import "github.com/clearpath-ai/gpufind/cmd"

func main() {
	cmd.Execute()
}
