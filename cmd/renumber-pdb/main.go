// cmd/renumber-pdb/main.go
package main

import (
	"resmap/internal/appshell"
	"resmap/internal/renumberapp"
)

func main() {
	appshell.Main(renumberapp.RunContext)
}
