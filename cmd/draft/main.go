package main

import (
	"os"

	"github.com/draftin/draft-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
