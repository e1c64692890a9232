package main

import "github.com/livp123/logstat/cmd/logstat/commands"

func main() {
	commands.Execute()
}
