package forecast

import (
	"github.com/urfave/cli/v2"

	"github.com/go-kul-anand/Kovai-co-timeseries/timeseries"
)

// RegisterCLI returns the forecast command group.
func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "forecast",
		Usage: "Runs the per-route SARIMA ridership forecast",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "forecast the next 7 days for every configured route",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "path to a YAML run configuration",
					},
					&cli.StringFlag{
						Name:  "dataset",
						Usage: "path to the ridership CSV",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "directory for forecast reports",
					},
				},
				Action: func(c *cli.Context) error {
					cfg := DefaultConfig()
					if path := c.String("config"); path != "" {
						var err error
						if cfg, err = LoadConfig(path); err != nil {
							return err
						}
					}
					if dataset := c.String("dataset"); dataset != "" {
						cfg.Dataset = dataset
					}
					if output := c.String("output"); output != "" {
						cfg.Output = output
					}

					dataset, err := timeseries.Load(cfg.Dataset)
					if err != nil {
						return err
					}

					_, err = NewPipeline(cfg).Run(dataset)
					return err
				},
			},
		},
	}
}
