// cmd/portfolio/main.go
package main

import (
	"context"
	"log"

	"github.com/dalemusser/waffle/app"

	"github.com/kapilraj10/portfolio-web/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatal(err)
	}
}
