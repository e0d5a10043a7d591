package util

import (
	"strconv"
	"testing"
	"time"
)

func TestFormatDateUTC(t *testing.T) {
	ts := time.Date(2024, 10, 10, 23, 30, 0, 0, time.UTC).Unix()
	if got := FormatDate(ts); got != "2024-10-10" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestFormatDateEpoch(t *testing.T) {
	if got := FormatDate(0); got != "1970-01-01" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}
