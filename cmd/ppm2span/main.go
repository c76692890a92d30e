// cmd/ppm2span/main.go
package main

import (
	"resmap/internal/appshell"
	"resmap/internal/spanapp"
)

func main() {
	appshell.Main(spanapp.RunContext)
}
