package main

import (
	"capindex/cmd"
)

func main() {
	cmd.Execute()
}
