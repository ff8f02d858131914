package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dfalcao/linkbio/internal/cli"
	"github.com/dfalcao/linkbio/internal/client"
)

func main() {
	baseURL := os.Getenv("LINKBIO_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	sessionPath, err := client.DefaultSessionPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	api := client.New(baseURL)
	store := client.NewSessionStore(sessionPath)
	app := cli.NewApp(api, store, os.Stdin, os.Stdout)

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
