package main

import (
	"context"
	"log"

	"github.com/dalemusser/gradstats/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
