package main

import (
	"github.com/consensys/go-peano/pkg/cmd"
)

func main() {
	cmd.Execute()
}
