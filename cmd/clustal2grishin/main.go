// cmd/clustal2grishin/main.go
package main

import (
	"resmap/internal/appshell"
	"resmap/internal/grishinapp"
)

func main() {
	appshell.Main(grishinapp.RunContext)
}
