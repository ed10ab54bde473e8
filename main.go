package main

import "github.com/dlima/coursehub/cmd"

func main() {
	cmd.Execute()
}
