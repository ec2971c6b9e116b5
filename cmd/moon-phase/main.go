package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ctrln3rd/lunara-watch/pkg/lunar"
)

func main() {
	var timeStr string
	flag.StringVar(&timeStr, "time", "", "UTC time to calculate phase for (RFC3339 format, e.g., 2024-01-15T12:00:00Z)")
	flag.Parse()

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	phase := lunar.Calculate(t)

	fmt.Printf("Moon Phase for %s\n", t.Format(time.RFC3339))
	fmt.Printf("  Phase Name:   %s\n", phase.Name)
	fmt.Printf("  Illumination: %.1f%%\n", phase.Illumination*100)
	if phase.Waxing {
		fmt.Printf("  Direction:    Waxing\n")
	} else {
		fmt.Printf("  Direction:    Waning\n")
	}
}
