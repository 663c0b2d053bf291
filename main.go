package main

import "github.com/deploymenttheory/go-fiemap/cmd"

func main() {
	cmd.Execute()
}
