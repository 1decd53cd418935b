package pgn

import (
	"fmt"
	"regexp"
	"strings"
)

// Tag is a PGN header pair.
type Tag struct {
	Name  string
	Value string
}

// roster is the seven-tag roster, written first and in this order.
var roster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

const lineWidth = 80

// Export renders a game as PGN. Roster tags missing from tags default to
// "?" (Date to "????.??.??", Result to result). Moves are SAN, white first.
func Export(tags []Tag, moves []string, result string) string {
	if result == "" {
		result = "*"
	}
	values := map[string]string{}
	var extra []Tag
	for _, t := range tags {
		if isRoster(t.Name) {
			values[t.Name] = t.Value
			continue
		}
		extra = append(extra, t)
	}
	values["Result"] = result

	var b strings.Builder
	for _, name := range roster {
		v, ok := values[name]
		if !ok || v == "" {
			v = "?"
			if name == "Date" {
				v = "????.??.??"
			}
		}
		writeTag(&b, name, v)
	}
	for _, t := range extra {
		writeTag(&b, t.Name, t.Value)
	}
	b.WriteString("\n")
	b.WriteString(movetext(moves, result))
	b.WriteString("\n")
	return b.String()
}

func writeTag(b *strings.Builder, name, value string) {
	value = strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
	fmt.Fprintf(b, "[%s \"%s\"]\n", name, value)
}

func isRoster(name string) bool {
	for _, r := range roster {
		if r == name {
			return true
		}
	}
	return false
}

func movetext(moves []string, result string) string {
	tokens := make([]string, 0, len(moves)+len(moves)/2+1)
	for i, m := range moves {
		if i%2 == 0 {
			tokens = append(tokens, fmt.Sprintf("%d.", i/2+1))
		}
		tokens = append(tokens, m)
	}
	tokens = append(tokens, result)

	var (
		b    strings.Builder
		line int
	)
	for i, tok := range tokens {
		if i > 0 {
			if line+1+len(tok) > lineWidth {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(tok)
		line += len(tok)
	}
	return b.String()
}

var headerRe = regexp.MustCompile(`\[(\w+)\s+"((?:[^"\\]|\\.)*)"\]`)

// ParseHeaders extracts PGN header tags into a map.
func ParseHeaders(pgn string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(pgn, "\n") {
		if !strings.HasPrefix(line, "[") {
			continue
		}
		m := headerRe.FindStringSubmatch(line)
		if len(m) == 3 && m[2] != "" {
			out[m[1]] = strings.NewReplacer(`\"`, `"`, `\\`, `\`).Replace(m[2])
		}
	}
	return out
}
