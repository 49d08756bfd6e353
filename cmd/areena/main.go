package main

import (
	"os"

	"github.com/tkivela/areena/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
