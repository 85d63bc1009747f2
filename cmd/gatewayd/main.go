package main

import (
	"os"

	"github.com/productscience/gateway/cmd/gatewayd/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
