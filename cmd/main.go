package main

import (
	"os"

	"github.com/Sanathkumarkunjithaya/CogniGraph/cmd/cognigraph"
)

func main() {
	if err := cognigraph.Execute(); err != nil {
		os.Exit(1)
	}
}
