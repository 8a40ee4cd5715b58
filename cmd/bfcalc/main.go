// Copyright 2020 Aleksandr Demakin. All rights reserved.

// bfcalc is a command-line calculator for correctly rounded binary floating-point operations.
package main

import (
	"os"

	"github.com/avdva/bigfloat/cmd/bfcalc/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
