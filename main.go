package main

import (
	"os"

	"github.com/dmvnavigator/dmvnav/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
