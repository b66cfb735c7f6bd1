// Package routefile loads route tables from text files.
//
// Format: one route per line, the pattern followed by a handler name,
// separated by whitespace. Blank lines and lines starting with # are ignored.
//
//	# blog
//	/                    front
//	/posts/:id           post
//	/static/*filepath    assets
package routefile

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rohanthewiz/routerec/core/rtr"
	"github.com/rohanthewiz/serr"
)

// Entry represents a single line in a route file.
type Entry struct {
	Pattern string
	Handler string
	Line    int
}

// Load reads all entries from the named file.
func Load(fileName string) ([]Entry, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, serr.Wrap(err, "file", fileName)
	}
	defer file.Close()

	entries, err := Read(file)
	if err != nil {
		return nil, serr.Wrap(err, "file", fileName)
	}
	return entries, nil
}

// Read parses route entries from r.
func Read(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	lineNbr := 0

	for scanner.Scan() {
		lineNbr++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, serr.New("line "+strconv.Itoa(lineNbr)+": expected a pattern and a handler name",
				"text", line)
		}

		entries = append(entries, Entry{Pattern: fields[0], Handler: fields[1], Line: lineNbr})
	}

	if err := scanner.Err(); err != nil {
		return nil, serr.Wrap(err, "line", strconv.Itoa(lineNbr))
	}

	return entries, nil
}

// Register adds every entry to router with the handler name as handler.
// It stops at the first rejected pattern; routes added before it stay registered.
func Register(router *rtr.Router[string], entries []Entry) error {
	for _, e := range entries {
		if _, err := router.Add(e.Pattern, e.Handler); err != nil {
			return serr.Wrap(err, "line", strconv.Itoa(e.Line), "pattern", e.Pattern)
		}
	}
	return nil
}

// LoadRouter builds a router from the named file.
func LoadRouter(fileName string) (*rtr.Router[string], error) {
	entries, err := Load(fileName)
	if err != nil {
		return nil, err
	}

	router := rtr.New[string]()
	if err := Register(router, entries); err != nil {
		return nil, serr.Wrap(err, "file", fileName)
	}
	return router, nil
}
