package main

import "github.com/nmasri/laneplan/pkg/interfaces/cli/commands"

func main() {
	commands.Execute()
}
