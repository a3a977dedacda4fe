// Command gen_oracle_cases generates a literal test table in oracle_test.go's
// format (cases named case_NNN) from the upstream crate's own test source,
// so the table can be refreshed without hand-transcribing Rust string
// literals.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	ready := make(chan struct{})

	eg.Go(func() error {
		gofmt := exec.CommandContext(ctx, "gofmt")
		fmtPipe, err := gofmt.StdinPipe()
		if err != nil {
			return err
		}

		defer out.Close()
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr

		out = fmtPipe

		close(ready)
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		select {
		case <-ctx.Done():
		case <-ready:
		}

		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := out.Close(); rerr == nil {
				rerr = cerr
			}
		}()

		return run(ctx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// oracleCase mirrors the struct literal this tool emits into
// oracle_test.go.
type oracleCase struct {
	cmdline string
	parts   []string
}

// run scans in for `chk(<cmdline>, &[<parts>]);` calls (the upstream
// crate's own test helper invocation) and writes the equivalent Go table
// to out.
func run(ctx context.Context) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	cases, err := scanChkCalls(data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("package winarg\n\n")
	buf.WriteString("// @generated from ")
	buf.WriteString(in.Name())
	buf.WriteString(" by scripts/gen_oracle_cases.go\n\n")
	buf.WriteString(`import (
	"testing"

	"github.com/stretchr/testify/require"
)

`)
	buf.WriteString("type oracleCase struct {\n\tname    string\n\tcmdline string\n\tparts   []string\n}\n\n")
	buf.WriteString("var oracleCases = []oracleCase{\n")
	for i, c := range cases {
		fmt.Fprintf(&buf, "\t{%q, %q, []string{", fmt.Sprintf("case_%03d", i), c.cmdline)
		for j, p := range c.parts {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "%q", p)
		}
		buf.WriteString("}},\n")
	}
	buf.WriteString("}\n\n")
	buf.WriteString(`func TestOracle(t *testing.T) {
	for _, tc := range oracleCases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseArgs(tc.cmdline)
			require.Equal(t, tc.parts, got, "parsing %q", tc.cmdline)
		})
	}
}
`)

	if ctx.Err() != nil {
		return ctx.Err()
	}
	_, err = buf.WriteTo(out)
	return err
}

// scanChkCalls finds every chk(<rust-string-literal>, &[<rust-string-literal>, ...]); call
// in src, decoding each literal (plain "...", raw r"...", or raw r#"..."#)
// as scanRustString describes.
func scanChkCalls(src []byte) ([]oracleCase, error) {
	var cases []oracleCase
	s := string(src)
	i := 0
	for {
		idx := indexFrom(s, "chk(", i)
		if idx < 0 {
			break
		}
		j := idx + len("chk(")
		j = skipSpace(s, j)

		cmdline, j, err := scanRustString(s, j)
		if err != nil {
			return nil, err
		}
		j = skipSpace(s, j)
		if j >= len(s) || s[j] != ',' {
			return nil, fmt.Errorf("offset %d: expected , after chk's first argument", j)
		}
		j++
		j = skipSpace(s, j)
		if j+1 >= len(s) || s[j] != '&' || s[j+1] != '[' {
			return nil, fmt.Errorf("offset %d: expected &[ starting chk's parts list", j)
		}
		j += 2

		var parts []string
		for {
			j = skipSpace(s, j)
			if j < len(s) && s[j] == ']' {
				j++
				break
			}
			part, next, err := scanRustString(s, j)
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
			j = skipSpace(s, next)
			if j < len(s) && s[j] == ',' {
				j++
			}
		}

		cases = append(cases, oracleCase{cmdline: cmdline, parts: parts})
		i = j
	}
	return cases, nil
}

func indexFrom(s, sub string, from int) int {
	idx := strings.Index(s[from:], sub)
	if idx < 0 {
		return -1
	}
	return from + idx
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

// scanRustString decodes one Rust string literal starting at s[i]: a raw
// hash-delimited string (r#"..."#), a raw string (r"..."), or a plain
// escaped string ("..."). In a plain string only the \" and \\ escapes are
// decoded; any other escape sequence is kept as written.
func scanRustString(s string, i int) (string, int, error) {
	switch {
	case strings.HasPrefix(s[i:], `r#"`):
		end := strings.Index(s[i+3:], `"#`)
		if end < 0 {
			return "", 0, fmt.Errorf("offset %d: unterminated r#\"...\"# literal", i)
		}
		return s[i+3 : i+3+end], i + 3 + end + 2, nil

	case strings.HasPrefix(s[i:], `r"`):
		j := i + 2
		for j < len(s) && s[j] != '"' {
			j++
		}
		return s[i+2 : j], j + 1, nil

	case i < len(s) && s[i] == '"':
		var inner strings.Builder
		j := i + 1
		for j < len(s) && s[j] != '"' {
			if s[j] == '\\' && j+1 < len(s) && (s[j+1] == '"' || s[j+1] == '\\') {
				j++
			}
			inner.WriteByte(s[j])
			j++
		}
		return inner.String(), j + 1, nil

	default:
		return "", 0, fmt.Errorf("offset %d: expected a string literal", i)
	}
}
