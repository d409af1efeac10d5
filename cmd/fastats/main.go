// cmd/fastats/main.go
package main

import (
	"fastats/internal/app"
	"fastats/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
