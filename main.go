package main

import "wasdex/cmd"

func main() {
	cmd.Execute()
}
