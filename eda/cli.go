package eda

import (
	"github.com/urfave/cli/v2"

	"github.com/go-kul-anand/Kovai-co-timeseries/forecast"
	"github.com/go-kul-anand/Kovai-co-timeseries/timeseries"
)

// RegisterCLI returns the eda command group.
func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "eda",
		Usage: "Produces tabular exploratory reports for the ridership dataset",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "write descriptive statistics, correlation, weekday/weekend and monthly reports",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dataset",
						Value: "data/dataset.csv",
						Usage: "path to the ridership CSV",
					},
					&cli.StringFlag{
						Name:  "output",
						Value: "reports/eda",
						Usage: "directory for EDA reports",
					},
				},
				Action: func(c *cli.Context) error {
					dataset, err := timeseries.Load(c.String("dataset"))
					if err != nil {
						return err
					}
					return Run(dataset, forecast.DefaultRoutes, c.String("output"))
				},
			},
		},
	}
}
