package main

import "dngen/cmd"

func main() {
	cmd.Execute()
}
