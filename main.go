package main

import "github.com/taskdepot/taskdepot/cmd"

func main() {
	cmd.Execute()
}
