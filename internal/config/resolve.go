package config

import "strings"

// DefaultBaseURL is used at request time when the resolved base is empty.
const DefaultBaseURL = "http://localhost:8000"

// BuildAPIURL is injected at build time:
//
//	go build -ldflags="-X github.com/csheth/newsreframer/internal/config.BuildAPIURL=https://api.example.com"
var BuildAPIURL = ""

// Source is one link in the base URL resolution chain.
type Source struct {
	Name  string
	Value string
}

// Resolution is the memoized outcome of walking the chain once at startup.
// Base may be empty; Endpoint applies the local default on every call.
type Resolution struct {
	Base   string `yaml:"base"`
	Source string `yaml:"source"`
}

// Resolve returns the first non-empty source value with one trailing slash
// stripped. With no non-empty source the resolution is empty.
func Resolve(chain ...Source) Resolution {
	for _, src := range chain {
		if src.Value == "" {
			continue
		}
		return Resolution{
			Base:   strings.TrimSuffix(src.Value, "/"),
			Source: src.Name,
		}
	}
	return Resolution{}
}

// Chain lists the sources in precedence order: the build-time value, then
// the runtime override.
func Chain(runtimeOverride string) []Source {
	return []Source{
		{Name: "build", Value: BuildAPIURL},
		{Name: "runtime", Value: runtimeOverride},
	}
}

// Endpoint returns the base to call right now.
func (r Resolution) Endpoint() string {
	if r.Base == "" {
		return DefaultBaseURL
	}
	return r.Base
}
