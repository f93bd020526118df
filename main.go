package main

import "github.com/korjavin/questiongen/cmd"

func main() {
	cmd.Execute()
}
