package main

import (
	"os"

	"github.com/xbcsmith/antares/cmd/antares/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
