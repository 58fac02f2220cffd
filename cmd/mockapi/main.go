package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/carebook/carebook/internal/logging"
	"github.com/carebook/carebook/internal/mockapi"
)

func main() {

	addr := flag.String("a", ":8000", "listen address")
	secret := flag.String("s", "carebook-dev-secret", "token signing secret")
	flag.Parse()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	store := mockapi.NewStore()
	if err := mockapi.SeedDemo(store); err != nil {
		log.Fatalf("%v", err)
		return
	}

	server := mockapi.NewServer(store, []byte(*secret), logger)
	if err := server.Run(*addr); err != nil {
		log.Fatalf("%v", err)
	}

}
