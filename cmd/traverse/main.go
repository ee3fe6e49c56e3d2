// cmd/traverse/main.go
package main

import (
	"os"

	"github.com/katalvlaran/lvsurvey/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
