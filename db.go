package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func buildDSNFromEnv() (string, error) {
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	user := os.Getenv("POSTGRES_USER")
	pass := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")
	if dbname == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			return url, nil
		}
		return "", errors.New("POSTGRES_DB not set; set env vars or DATABASE_URL")
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
	return dsn, nil
}

func openDatabase() (*sql.DB, error) {
	dsn, err := buildDSNFromEnv()
	if err != nil {
		return nil, fmt.Errorf("database config error: %w", err)
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect error: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database not reachable: %w", err)
	}
	return db, nil
}

// insertStatisticsResult persists one computed Stats row along with the
// processing metadata the service loop measures.
func insertStatisticsResult(db *sql.DB, inputFile string, st Stats, durationSeconds, memoryBytes float64) error {
	const q = `
INSERT INTO statistics_results
  (input_file, count, invalid, mean, median, modes, variance, standard_deviation, duration, memory, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW(),NOW())
`
	_, err := db.Exec(q,
		inputFile,
		st.Count, st.Invalid,
		st.Mean, st.Median, formatModes(st.Modes), st.Variance, st.StdDev,
		durationSeconds, memoryBytes,
	)
	return err
}
