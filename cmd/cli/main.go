package main

import (
	"context"
	"log"
	"os"

	"github.com/researchhub/hubcli/internal/buildinfo"
	"github.com/researchhub/hubcli/internal/client/cli"
	"github.com/researchhub/hubcli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)

}
