// cmd/findextend/main.go
package main

import (
	"findextend/internal/app"
	"findextend/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
