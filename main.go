package main

import (
	"github.com/tagtools/tag/cmd"
)

func main() {
	cmd.Execute()
}
