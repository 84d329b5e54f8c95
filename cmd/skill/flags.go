package main

import (
	"flag"
	"os"
)

var flagRunAddr string
var flagLogLevel string
var flagRedisURL string

func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.StringVar(&flagRedisURL, "r", "", "redis URL, empty keeps messages in memory")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envRedisURL := os.Getenv("REDIS_URL"); envRedisURL != "" {
		flagRedisURL = envRedisURL
	}
}
