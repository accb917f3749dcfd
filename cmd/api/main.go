package main

import (
	"context"
	"log"

	"github.com/Apurer/go-gin-order-api/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("order API exited: %v", err)
	}
}
