package main

import (
	"fmt"
	"os"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mentor: %v\n", err)
		os.Exit(1)
	}
}
