package main

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// processStatsTokens runs the statistics pipeline over tokens, emits the
// report, and persists the result when a database is attached. The "no valid
// numbers" outcome still produces a report; it just carries no aggregates and
// nothing is stored.
func processStatsTokens(db *sql.DB, inputFile string, tokens []string, start time.Time) error {
	var st Stats
	var statsErr error
	peak := measurePeakResidentMemory(func() {
		st, statsErr = computeStatistics(tokens)
	})
	elapsed := time.Since(start).Seconds()
	outputFile := buildOutputFilename("StatisticsResults", inputFile)

	if errors.Is(statsErr, errNoValidNumbers) {
		return emitReport(outputFile, buildEmptyStatsReport(inputFile, st.Invalid, elapsed))
	}
	if statsErr != nil {
		return statsErr
	}

	if err := emitReport(outputFile, buildStatsReport(inputFile, st, elapsed)); err != nil {
		return err
	}
	if db != nil {
		if err := insertStatisticsResult(db, inputFile, st, elapsed, peak); err != nil {
			return fmt.Errorf("insert statistics_result failed: %w", err)
		}
		log.Printf("stored statistics for %s duration=%.6fs memory_bytes=%.0f\n", inputFile, elapsed, peak)
	}
	return nil
}

func processStatsFile(db *sql.DB, path string) error {
	start := time.Now()
	tokens, err := readTokens(path)
	if err != nil {
		return fmt.Errorf("read input failed: %w", err)
	}
	return processStatsTokens(db, path, tokens, start)
}

// runService consumes Sidekiq jobs from the Redis queue; each job names a
// token file to run the statistics pipeline on.
func runService(db *sql.DB) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	u, err := url.Parse(redisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	host := u.Host
	if host == "" && u.Scheme == "unix" {
		log.Fatal("unix sockets not supported by this worker")
	}
	password, _ := u.User.Password()
	dbIndex := 0
	if parts := strings.TrimPrefix(u.Path, "/"); parts != "" {
		if i, err := strconv.Atoi(parts); err == nil {
			dbIndex = i
		}
	}
	qname := os.Getenv("WORKER_QUEUE")
	if qname == "" {
		qname = "default"
	}
	queue := "queue:" + qname

	for {
		conn, err := net.DialTimeout("tcp", host, 5*time.Second)
		if err != nil {
			log.Printf("redis connect failed: %v; retrying in 2s", err)
			time.Sleep(2 * time.Second)
			continue
		}
		rw := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))

		if password != "" {
			if err := writeCommand(rw, "AUTH", password); err != nil || readOK(rw) != nil {
				log.Printf("redis auth failed: %v", err)
				conn.Close()
				time.Sleep(2 * time.Second)
				continue
			}
		}
		if dbIndex != 0 {
			if err := writeCommand(rw, "SELECT", strconv.Itoa(dbIndex)); err != nil || readOK(rw) != nil {
				log.Printf("redis select failed: %v", err)
				conn.Close()
				time.Sleep(2 * time.Second)
				continue
			}
		}

		for {
			if err := writeCommand(rw, "BRPOP", queue, "5"); err != nil {
				log.Printf("redis write error: %v", err)
				break
			}
			key, payload, err := readQueuePop(rw)
			if err != nil {
				if err != ioEOF {
					log.Printf("redis read error: %v", err)
				}
				break
			}
			if key == "" && payload == "" {
				continue // timeout
			}
			var job sidekiqJob
			if err := json.Unmarshal([]byte(payload), &job); err != nil {
				log.Printf("invalid job json: %v", err)
				continue
			}
			if job.Class != "StatsWorker" {
				log.Printf("skipping job class=%s", job.Class)
				continue
			}
			if len(job.Args) == 0 {
				log.Printf("job missing input path: %s", payload)
				continue
			}
			path, err := parseJobPath(job.Args[0])
			if err != nil {
				log.Printf("job has unusable input path: %v", err)
				continue
			}
			if err := processStatsFile(db, path); err != nil {
				log.Printf("process error: %v", err)
			}
		}
		conn.Close()
		time.Sleep(1 * time.Second)
	}
}
