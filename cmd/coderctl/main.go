package main

import "coderkit/cmd/coderctl/cmd"

func main() {
	cmd.Execute()
}
