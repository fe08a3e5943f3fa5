package main

import (
	"log"

	"github.com/careerlink/assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
