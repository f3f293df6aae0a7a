package main

import (
	"github.com/vigil-sh/vigil/internal/cli"
)

func main() {
	cli.Execute()
}
