package main

import "github.com/ib-77/fcomp/cmd/fcomp/commands"

func main() {
	commands.Execute()
}
