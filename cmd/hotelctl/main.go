package main

import (
	"fmt"
	"os"

	"github.com/Leonardo2020-col/Hotel-management-demo-V2-sub002/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
