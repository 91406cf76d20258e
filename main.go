package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

// loadConfig resolves defaults, then config.json if present, then flags
func loadConfig(args []string) (utils.Config, error) {
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	fs := flag.NewFlagSet("go-life", flag.ContinueOnError)
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[loadConfig] failed to parse flags")
	}
	return config, config.Validate()
}

func main() {
	config, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	d, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to initialise grid: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch config.Renderer {
	case utils.RendererCanvas:
		err = runCanvas(d)
	default:
		err = runTerminal(ctx, d)
	}
	if err != nil {
		// grid errors are programming errors; never continue on a corrupt generation
		log.Fatalf("stopped at generation %d: %+v", d.generation, err)
	}

	log.Printf("Final stats: %d generations in %.1f seconds, %.1f%% avg density, peak %d, %d restarts",
		d.generation, d.stats.Runtime().Seconds(), d.stats.AverageDensity*100,
		d.stats.PeakPopulation, d.stats.Restarts)
}
