package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

const (
	// DefaultAPIURL is the server the authors and books commands talk to.
	DefaultAPIURL = "http://localhost:3000"

	requestTimeout = 30 * time.Second
)

// apiFlags holds the flags shared by the API commands.
type apiFlags struct {
	APIURL    string
	APIPrefix string
}

func (f *apiFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.APIURL, "api", DefaultAPIURL, "Base URL of the catalog server")
	fs.StringVar(&f.APIPrefix, "prefix", "/api", "Path prefix the server mounts the API under")
}

// splitAction separates the subcommand ("list", "get", ...) from its flags.
func splitAction(args []string, actions ...string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("missing action, expected one of %v", actions)
	}
	for _, action := range actions {
		if args[0] == action {
			return action, args[1:], nil
		}
	}
	return "", nil, fmt.Errorf("unknown action %q, expected one of %v", args[0], actions)
}

// positionalID reads the single id argument left after flag parsing.
func positionalID(fs *flag.FlagSet) (uint, error) {
	if fs.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one id argument, got %d", fs.NArg())
	}
	id, err := strconv.ParseUint(fs.Arg(0), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", fs.Arg(0))
	}
	return uint(id), nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
