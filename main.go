package main

import "github.com/user/promptpack/cmd"

func main() {
	cmd.Execute()
}
