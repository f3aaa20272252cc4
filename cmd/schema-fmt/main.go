// Command schema-fmt strict-checks Cedar schema JSON files and rewrites them
// in a canonical indented form.
//
// With no arguments it reads a schema from stdin and writes the formatted
// schema to stdout. With file arguments it formats each file, printing to
// stdout unless -w is given, in which case files are rewritten in place. The
// exit status is non-zero if any input fails the strict decode.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spinda/cedar/schema"
)

func main() {
	write := flag.Bool("w", false, "write result back to source file instead of stdout")
	flag.Parse()

	if err := run(flag.Args(), *write); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(paths []string, write bool) error {
	if len(paths) == 0 {
		if write {
			return fmt.Errorf("-w requires file arguments")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		out, err := format(data)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := format(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if write {
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return err
			}
			continue
		}
		if _, err := os.Stdout.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func format(data []byte) ([]byte, error) {
	fragment, err := schema.NewFragmentFromBytes(data)
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(fragment, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
