package main

import "github.com/pcollins/harmonia/cmd"

func main() {
	cmd.Execute()
}
