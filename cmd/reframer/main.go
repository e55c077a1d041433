// Reframer is a terminal client for a news reframing service.
//
// Type a news topic and it asks the service for five reframings (a neutral
// summary, a curiosity headline, a human-interest angle, an economic lens,
// and sober bullet points) and renders them as cards.
//
// Usage:
//
//	reframer [flags]                 interactive terminal UI
//	reframer rewrite <topic...>      one-shot, prints cards to stdout
//	reframer config                  show effective settings
//	reframer version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
