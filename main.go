package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment from .env files for local development.
	_ = godotenv.Load(".env")

	var mode string
	var inputURL string
	var save bool
	var service bool
	flag.StringVar(&mode, "mode", "stats", "pipeline to run: stats, convert or wordcount")
	flag.StringVar(&inputURL, "url", "", "fetch the input text over HTTP instead of reading a local file")
	flag.BoolVar(&save, "save", false, "store statistics results in Postgres")
	flag.BoolVar(&service, "service", false, "run as background service listening to the Sidekiq queue")
	flag.Parse()

	var db *sql.DB
	if save || service {
		var err error
		db, err = openDatabase()
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
	}

	if service {
		runService(db)
		return
	}

	start := time.Now()

	inputFile := inputURL
	var tokens []string
	var err error
	switch {
	case inputURL != "":
		tokens, err = fetchTokens(inputURL)
	case flag.NArg() == 1:
		inputFile = flag.Arg(0)
		tokens, err = readTokens(inputFile)
	default:
		fmt.Fprintln(os.Stderr, "Usage: statsworker [flags] fileWithData.txt")
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("ERROR: Could not read input '%s': %v", inputFile, err)
	}

	switch mode {
	case "stats":
		err = processStatsTokens(db, inputFile, tokens, start)
	case "convert":
		err = runConvert(inputFile, tokens, start)
	case "wordcount":
		err = runWordCount(inputFile, tokens, start)
	default:
		log.Fatalf("unknown mode %q; available: stats, convert, wordcount", mode)
	}
	if err != nil {
		log.Fatal(err)
	}
}
