package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/go-kul-anand/Kovai-co-timeseries/eda"
	"github.com/go-kul-anand/Kovai-co-timeseries/forecast"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Logger = log.Logger.Level(zerolog.InfoLevel)

	app := &cli.App{
		Name:        "ridership",
		Description: "Forecasting and exploratory analysis for daily transit ridership",

		Commands: []*cli.Command{
			forecast.RegisterCLI(),
			eda.RegisterCLI(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
