package main

import (
	"log"

	"github.com/urlscout/urlscout-go/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
