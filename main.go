package main

import "github.com/papapumpkin/astronexus/cmd"

func main() {
	cmd.Execute()
}
