package main

import "github.com/tvintergoller/keep-informed/cmd"

func main() {
	cmd.Execute()
}
