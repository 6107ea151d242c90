package main

import (
	"context"

	"github.com/faizmokh/restoran/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
