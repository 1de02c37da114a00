package main

import (
	"os"

	"github.com/rqc23shu/safevalley-map/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
