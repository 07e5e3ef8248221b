package main

import (
	"context"
	"os"

	"playlist-tool/internal/app"
)

func main() {
	os.Exit(app.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, app.NewFyneApp))
}
