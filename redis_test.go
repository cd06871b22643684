package main

import (
	"bufio"
	"bytes"
	"strconv"
	"testing"
)

func newTestRW(input string) (*bufio.ReadWriter, *bytes.Buffer) {
	out := bytes.NewBuffer(nil)
	rw := bufio.NewReadWriter(bufio.NewReader(bytes.NewBufferString(input)), bufio.NewWriter(out))
	return rw, out
}

func TestWriteCommand(t *testing.T) {
	rw, out := newTestRW("")
	if err := writeCommand(rw, "BRPOP", "queue:default", "5"); err != nil {
		t.Fatalf("writeCommand error: %v", err)
	}
	got := out.String()
	want := "*3\r\n$5\r\nBRPOP\r\n$13\r\nqueue:default\r\n$1\r\n5\r\n"
	if got != want {
		t.Fatalf("unexpected redis command. got %q want %q", got, want)
	}
}

func TestReadOK(t *testing.T) {
	rw, _ := newTestRW("+OK\r\n")
	if err := readOK(rw); err != nil {
		t.Fatalf("readOK error: %v", err)
	}

	rw, _ = newTestRW("-ERR nope\r\n")
	if err := readOK(rw); err == nil {
		t.Fatalf("expected error for error reply")
	}
}

func TestReadQueuePopMultiBulk(t *testing.T) {
	payload := `{"class":"StatsWorker","args":["data.txt"]}`
	reply := "*2\r\n$13\r\nqueue:default\r\n$" + strconv.Itoa(len(payload)) + "\r\n" + payload + "\r\n"
	rw, _ := newTestRW(reply)

	key, msg, err := readQueuePop(rw)
	if err != nil {
		t.Fatalf("readQueuePop error: %v", err)
	}
	if key != "queue:default" {
		t.Fatalf("expected key \"queue:default\", got %q", key)
	}
	if msg != payload {
		t.Fatalf("unexpected payload: %q", msg)
	}
}

func TestReadQueuePopTimeout(t *testing.T) {
	for _, reply := range []string{
		"$-1\r\n", // bulk nil
		"*-1\r\n", // array nil (Redis BRPOP timeout)
		"*0\r\n",  // empty array
	} {
		rw, _ := newTestRW(reply)
		key, msg, err := readQueuePop(rw)
		if err != nil {
			t.Fatalf("readQueuePop error for %q: %v", reply, err)
		}
		if key != "" || msg != "" {
			t.Fatalf("expected empty timeout result for %q, got %q %q", reply, key, msg)
		}
	}
}

func TestReadQueuePopErrorReply(t *testing.T) {
	rw, _ := newTestRW("-WRONGTYPE not a list\r\n")
	if _, _, err := readQueuePop(rw); err == nil {
		t.Fatalf("expected error for redis error reply")
	}
}

func TestReadQueuePopTruncated(t *testing.T) {
	rw, _ := newTestRW("*2\r\n$5\r\nqueue\r\n$10\r\nshort")
	if _, _, err := readQueuePop(rw); err != ioEOF {
		t.Fatalf("expected ioEOF for truncated reply, got %v", err)
	}
}
