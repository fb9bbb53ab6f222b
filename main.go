package main

import "github.com/hiraku/calq/cmd"

func main() {
	cmd.Execute()
}
