package main

import "github.com/jheaff1/rules-cc/cmd"

func main() {
	cmd.Execute()
}
