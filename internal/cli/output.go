package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

type result struct {
	Input      string
	Output     string
	Local      string
	UTC        string
	Unix       int64
	UnixMillis int64
	UnixMicros int64
	UnixNanos  int64
	Location   string
}

func newResult(s string, t time.Time, layout string) result {
	var location string
	if t.Location() != time.Local && t.Location() != time.UTC {
		location = t.Location().String()
	}
	return result{
		Input:      s,
		Output:     t.Format(layout),
		Local:      t.Local().Format(layout),
		UTC:        t.UTC().Format(time.RFC3339Nano),
		Unix:       t.Unix(),
		UnixMillis: t.UnixMilli(),
		UnixMicros: t.UnixMicro(),
		UnixNanos:  t.UnixNano(),
		Location:   location,
	}
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

func writeText(w io.Writer, r result) {
	highlight := color.New(color.FgGreen, color.Bold)
	if r.Location != "" {
		highlight.Fprintln(w, r.Output, r.Location)
	} else {
		highlight.Fprintln(w, r.Output)
	}
	fmt.Fprintln(w, r.Local)
	fmt.Fprintln(w, r.UTC)
	fmt.Fprintf(w, "s\t%d\n", r.Unix)
	fmt.Fprintf(w, "ms\t%d\n", r.UnixMillis)
	fmt.Fprintf(w, "µs\t%d\n", r.UnixMicros)
	fmt.Fprintf(w, "ns\t%d\n", r.UnixNanos)
}
