// Command server runs the tasktrail HTTP API.
package main

import (
	"context"
	"log"

	"github.com/mpetrenko/tasktrail/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
