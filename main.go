package main

import "github.com/josephlewis42/groupshell/cmd"

func main() {
	cmd.Execute()
}
