package main

import "github.com/geange/wordrep/cmd/wordrep/cmd"

func main() {
	cmd.Execute()
}
