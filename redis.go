package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// sidekiqJob is the subset of the Sidekiq payload this worker cares about.
type sidekiqJob struct {
	Class string            `json:"class"`
	Args  []json.RawMessage `json:"args"`
	Queue string            `json:"queue"`
}

var ioEOF = errors.New("eof")

func writeCommand(w *bufio.ReadWriter, cmd string, args ...string) error {
	if _, err := fmt.Fprintf(w, "*%d\r\n", 1+len(args)); err != nil {
		return err
	}
	if err := writeBulk(w, cmd); err != nil {
		return err
	}
	for _, a := range args {
		if err := writeBulk(w, a); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeBulk(w *bufio.ReadWriter, s string) error {
	_, err := fmt.Fprintf(w, "$%d\r\n%s\r\n", len(s), s)
	return err
}

func readLine(r *bufio.Reader) (string, error) {
	b, err := r.ReadBytes('\n')
	if err != nil {
		return "", ioEOF
	}
	if len(b) >= 2 && b[len(b)-2] == '\r' {
		b = b[:len(b)-2]
	}
	return string(b), nil
}

func readOK(rw *bufio.ReadWriter) error {
	line, err := readLine(rw.Reader)
	if err != nil {
		return err
	}
	if len(line) > 0 && line[0] == '+' {
		return nil
	}
	return fmt.Errorf("redis not OK: %s", line)
}

// readBulkBody reads the body of a bulk string whose "$N" header line has
// already been consumed.
func readBulkBody(r *bufio.Reader, header string) (string, error) {
	n, err := strconv.Atoi(header[1:])
	if err != nil {
		return "", fmt.Errorf("bad bulk header %q", header)
	}
	if n < 0 {
		return "", nil
	}
	buf := make([]byte, n+2) // payload plus trailing CRLF
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", ioEOF
	}
	return string(buf[:n]), nil
}

// readQueuePop decodes a BRPOP reply: a two-element array of queue name and
// payload, a nil reply on timeout, or an error line. A timeout yields empty
// strings with no error.
func readQueuePop(rw *bufio.ReadWriter) (key, payload string, err error) {
	line, err := readLine(rw.Reader)
	if err != nil {
		return "", "", err
	}
	if line == "" {
		return "", "", fmt.Errorf("empty reply")
	}
	switch line[0] {
	case '*':
		n, convErr := strconv.Atoi(line[1:])
		if convErr != nil {
			return "", "", fmt.Errorf("bad array header %q", line)
		}
		if n < 2 {
			return "", "", nil // nil or empty array: BRPOP timed out
		}
		fields := make([]string, 0, n)
		for i := 0; i < n; i++ {
			header, err := readLine(rw.Reader)
			if err != nil {
				return "", "", err
			}
			if len(header) == 0 || header[0] != '$' {
				return "", "", fmt.Errorf("unexpected array element: %s", header)
			}
			body, err := readBulkBody(rw.Reader, header)
			if err != nil {
				return "", "", err
			}
			fields = append(fields, body)
		}
		return fields[0], fields[1], nil
	case '$':
		body, err := readBulkBody(rw.Reader, line)
		if err != nil {
			return "", "", err
		}
		return "", body, nil
	case '-':
		return "", "", fmt.Errorf("redis error: %s", line)
	default:
		return "", "", fmt.Errorf("unexpected reply: %s", line)
	}
}
