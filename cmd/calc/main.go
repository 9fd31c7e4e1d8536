package main

import (
	"context"
	"log"

	"github.com/scott-cotton/cli"
)

func main() {
	log.SetFlags(0)
	cli.MainContext(context.Background(), MainCommand())
}
