// Package main enables tcping to execute as a CLI tool
package main

import (
	"os"

	"github.com/tcping-ru/tcping/internal/app"
)

func main() {
	os.Exit(app.Run())
}
