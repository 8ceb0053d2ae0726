package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(version)); err != nil {
		os.Exit(1)
	}
}
