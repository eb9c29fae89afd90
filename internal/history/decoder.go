// Package history decodes bash and zsh history files into command entries.
package history

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Flavor represents the history file format
type Flavor string

const (
	FlavorBash Flavor = "bash"
	FlavorZsh  Flavor = "zsh"
)

// Entry represents a single history entry
type Entry struct {
	Command   string
	Timestamp time.Time
	Raw       string
}

var (
	// Zsh extended format: ": <unix_ts>:<elapsed_sec>;<cmd>"
	zshExtendedRe = regexp.MustCompile(`^: (\d+):(\d+);(.*)$`)
	// Bash HISTTIMEFORMAT comment line: "#<unix_ts>"
	bashTimestampRe = regexp.MustCompile(`^#(\d+)\s*$`)
)

// Decode reads a history file and returns its entries in file order.
// Parse anomalies degrade to literal command text; only read errors surface.
func Decode(r io.Reader, flavor Flavor) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending string
	var pendingTime time.Time

	flush := func(logical string) {
		var entry Entry
		switch flavor {
		case FlavorZsh:
			entry = decodeZshLine(logical)
		default:
			entry = Entry{Command: logical, Raw: logical}
			if !pendingTime.IsZero() {
				entry.Timestamp = pendingTime
				pendingTime = time.Time{}
			}
		}

		entry.Command = cleanCommand(entry.Command)
		if entry.Command == "" {
			return
		}
		entries = append(entries, entry)
	}

	for scanner.Scan() {
		line := scanner.Text()

		// Rejoin continuation lines: a multi-line command is one entry,
		// with each elided newline collapsing to a single space.
		if joined, more := joinContinuation(line); more {
			pending += strings.TrimRight(joined, " \t") + " "
			continue
		} else {
			line = pending + joined
			pending = ""
		}

		if flavor == FlavorBash {
			// Timestamp comment belongs to the following command line.
			if m := bashTimestampRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				if ts, err := strconv.ParseInt(m[1], 10, 64); err == nil {
					pendingTime = time.Unix(ts, 0)
				}
				continue
			}
		}

		flush(line)
	}
	if pending != "" {
		flush(pending)
	}

	return entries, scanner.Err()
}

// decodeZshLine strips the extended-history prefix when present. A prefix
// with an unparseable timestamp falls back to literal text rather than
// failing the run.
func decodeZshLine(line string) Entry {
	m := zshExtendedRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{Command: line, Raw: line}
	}

	ts, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Entry{Command: line, Raw: line}
	}

	return Entry{
		Command:   m[3],
		Timestamp: time.Unix(ts, 0),
		Raw:       line,
	}
}

// joinContinuation reports whether line continues on the next physical line
// and returns it with the trailing escape removed.
func joinContinuation(line string) (string, bool) {
	if strings.HasSuffix(line, `\`) && !strings.HasSuffix(line, `\\`) {
		return strings.TrimSuffix(line, `\`), true
	}
	return line, false
}

// cleanCommand trims the command and folds a leading sudo so privileged and
// unprivileged invocations of the same command count together.
func cleanCommand(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if rest, ok := strings.CutPrefix(cmd, "sudo "); ok {
		cmd = strings.TrimSpace(rest)
	}
	return cmd
}
