package cfpath

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/cfpath/core"
)

// LoadSIF reads a signed interaction file: one arc per line,
//
//	<source> <polarity> <target>
//
// with polarity 0 (activating) or 1 (inhibiting), whitespace
// separated. Blank lines and self-loops are skipped. The result is a
// signed, unweighted graph ready for querying.
func LoadSIF(r io.Reader) (*core.Graph, error) {
	g := core.NewSignedGraph()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("cfpath: sif line %d: want 3 fields, got %d", line, len(fields))
		}
		u, polarity, v := fields[0], fields[1], fields[2]
		if u == v {
			continue
		}

		var sign core.Sign
		switch polarity {
		case "0":
			sign = core.Positive
		case "1":
			sign = core.Negative
		default:
			return nil, fmt.Errorf("cfpath: sif line %d: bad polarity %q", line, polarity)
		}
		if err := g.AddEdge(u, v, core.WithSign(sign)); err != nil {
			return nil, fmt.Errorf("cfpath: sif line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cfpath: read sif: %w", err)
	}

	return g, nil
}

// LoadSIFFile opens path and delegates to LoadSIF.
func LoadSIFFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cfpath: open sif: %w", err)
	}
	defer f.Close()

	return LoadSIF(f)
}
