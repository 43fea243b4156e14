package main

import "kasa/cmd"

func main() {
	cmd.Execute()
}
