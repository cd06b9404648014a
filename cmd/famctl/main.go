package main

import (
	"github.com/joho/godotenv"

	"famtree/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
