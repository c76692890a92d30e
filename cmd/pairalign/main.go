// cmd/pairalign/main.go
package main

import (
	"resmap/internal/alignapp"
	"resmap/internal/appshell"
)

func main() {
	appshell.Main(alignapp.RunContext)
}
