package main

import (
	"os"

	"github.com/o365cli/o365/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
