package main

import "ciao/cmd/client/cmd"

func main() {
	cmd.Execute()
}
