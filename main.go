package main

import (
	"context"
	"log"

	"zoo-admin/cmd"
)

func main() {
	if err := cmd.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("zoo-admin: %v", err)
	}
}
