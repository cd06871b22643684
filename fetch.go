package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const fetchTimeout = 30 * time.Second

// fetchTokens downloads a whitespace-delimited data file over HTTP and splits
// it the same way readTokens does.
func fetchTokens(url string) ([]string, error) {
	client := resty.New().SetTimeout(fetchTimeout)
	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status())
	}
	return splitTokens(strings.NewReader(string(resp.Body())))
}
