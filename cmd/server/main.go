package main

import (
	"context"
	"log"

	"github.com/dberestov/taskdeck/internal/server"
	"github.com/dberestov/taskdeck/internal/server/config"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
