package main

import "github.com/mediatools/shottime/cmd/shottime/cmd"

func main() {
	cmd.Execute()
}
