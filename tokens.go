package main

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// readTokens reads a text file and returns its whitespace-separated tokens in
// file order.
func readTokens(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return splitTokens(f)
}

func splitTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		tokens = append(tokens, strings.Fields(scanner.Text())...)
	}
	return tokens, scanner.Err()
}
