package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	gojson "github.com/goccy/go-json"

	unbox "github.com/reoring/unbox"
)

func main() {
	var at string
	var asYAML bool
	flag.StringVar(&at, "at", "", "dotted key-path to resolve before printing (e.g. a.b.0.c)")
	flag.BoolVar(&asYAML, "yaml", false, "treat the input as YAML instead of JSON")
	flag.Usage = usage
	flag.Parse()

	data, err := readInput(flag.Arg(0))
	if err != nil {
		fatalf("reading input: %v", err)
	}

	src := unbox.JSONBytes(data)
	if asYAML {
		src = unbox.YAMLBytes(data)
	}

	v, err := unbox.DecodeWith(src, func(u *unbox.Unboxer) (any, error) {
		if at == "" {
			return u.Tree(), nil
		}
		return unbox.RequireAt(u, at, unbox.Raw()), nil
	})
	if err != nil {
		reportIssues(err)
		os.Exit(1)
	}

	out, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encoding output: %v", err)
	}
	fmt.Println(string(out))
}

func usage() {
	fmt.Fprintln(os.Stderr, "unbox CLI\n\nUsage:\n  unbox [-at key.path] [-yaml] [file]\n\nReads JSON (or YAML with -yaml) from file or stdin, resolves the optional\nkey-path, and prints the value found there as JSON.")
	flag.PrintDefaults()
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func reportIssues(err error) {
	iss, ok := unbox.AsIssues(err)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, it := range iss {
		if it.Path != "" {
			fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
			continue
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", it.Code, it.Message)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
