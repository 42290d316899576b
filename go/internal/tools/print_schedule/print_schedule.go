package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/mcdev12/sportsfeeds/go/clients/feeds_client"
	"github.com/mcdev12/sportsfeeds/go/internal/feedsconfig"
)

func main() {
	league := flag.String("league", "mlb", "league to pull (mlb, nfl, nba, nhl)")
	season := flag.String("season", "", "season token, defaults to current")
	date := flag.String("date", "", "date in YYYYMMDD form; pulls the daily schedule")
	daily := flag.Bool("daily", false, "pull today's schedule instead of the full season")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := feedsconfig.NewConfigFromEnv().LoadFile("feeds.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := feeds_client.NewFeedsClient(cfg.APIKey, cfg.Password, feeds_client.League(*league), clientOptions(cfg)...)
	if err != nil {
		log.Fatalf("Failed to create feeds client: %v", err)
	}

	opts := feeds_client.RequestOptions{Season: *season}
	if *date != "" {
		parsed, err := time.Parse(feeds_client.DateLayout, *date)
		if err != nil {
			log.Fatalf("Invalid date %q: %v", *date, err)
		}
		opts.Date = parsed
	}

	ctx := context.Background()

	var body []byte
	if *daily || *date != "" {
		body, err = client.DailyGames(ctx, opts)
	} else {
		body, err = client.SeasonalGames(ctx, opts)
	}
	if err != nil {
		log.Fatalf("Failed to get schedule: %v", err)
	}

	fmt.Println(string(body))
}

func clientOptions(cfg feedsconfig.Config) []feeds_client.Option {
	var opts []feeds_client.Option
	if cfg.BaseURL != "" {
		opts = append(opts, feeds_client.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Version != "" {
		opts = append(opts, feeds_client.WithVersion(cfg.Version))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, feeds_client.WithTimeout(cfg.Timeout))
	}
	return opts
}
