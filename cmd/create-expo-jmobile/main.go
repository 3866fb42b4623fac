package main

import (
	"os"

	"github.com/JamesHardey/create-expo-jmobile/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
