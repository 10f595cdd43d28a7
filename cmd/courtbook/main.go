package main

import (
	"github.com/lmoreno/courtbook/internal/cli"
)

func main() {
	cli.Execute()
}
