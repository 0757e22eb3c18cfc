package main

import (
	"os"

	"github.com/precis-cli/precis/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
