package main

import (
	"github.com/NVIDIA/nodefacts/pkg/cli"
)

func main() {
	cli.Execute()
}
