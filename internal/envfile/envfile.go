// Package envfile reads KEY=VALUE files such as a project's .env.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/wowpub/internal/messages"
)

// Parse reads .env content into a key-value map. Blank lines and lines
// starting with # are skipped, an "export " prefix is accepted, and values
// may be single-quoted (literal) or double-quoted (with \" \\ \n escapes).
// Later assignments win.
func Parse(r io.Reader) (map[string]string, error) {
	env := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if ok {
			env[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return env, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(content string) (map[string]string, error) {
	return Parse(strings.NewReader(content))
}

func parseLine(line string) (string, string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))

	key, raw, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false, errors.New(messages.EnvfileMissingEquals)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false, errors.New(messages.EnvfileEmptyKey)
	}
	value, err := parseValue(strings.TrimSpace(raw))
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

func parseValue(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	switch raw[0] {
	case '\'':
		end := strings.IndexByte(raw[1:], '\'')
		if end < 0 {
			return "", fmt.Errorf(messages.EnvfileUnterminatedFmt, "single")
		}
		return raw[1 : end+1], nil
	case '"':
		var b strings.Builder
		for i := 1; i < len(raw); i++ {
			c := raw[i]
			switch {
			case c == '"':
				return b.String(), nil
			case c == '\\' && i+1 < len(raw):
				i++
				switch raw[i] {
				case 'n':
					b.WriteByte('\n')
				case 't':
					b.WriteByte('\t')
				default:
					b.WriteByte(raw[i])
				}
			default:
				b.WriteByte(c)
			}
		}
		return "", fmt.Errorf(messages.EnvfileUnterminatedFmt, "double")
	}
	if idx := strings.Index(raw, " #"); idx >= 0 {
		raw = strings.TrimSpace(raw[:idx])
	}
	return raw, nil
}
