package main

import "github.com/katalvlaran/gridpath/cmd/gridpath/cmd"

func main() {
	cmd.Execute()
}
