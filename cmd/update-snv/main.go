// cmd/update-snv/main.go
package main

import (
	"resmap/internal/appshell"
	"resmap/internal/snvapp"
)

func main() {
	appshell.Main(snvapp.RunContext)
}
