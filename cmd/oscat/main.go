package main

import "github.com/osckit/oscwire/cmd/oscat/cmd"

func main() {
	cmd.Execute()
}
