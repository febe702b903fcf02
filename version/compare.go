// Package version looks up the latest published release and tells the user when an update exists.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare orders two release tags: 1 when a is newer, -1 when b is newer, 0 when equal.
// Missing components count as zero and build or pre-release suffixes are ignored,
// so "v1.2" equals "1.2.0-rc1".
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}

func parse(tag string) (parts [3]int, err error) {
	core, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(tag), "v"), "-")
	core, _, _ = strings.Cut(core, "+")

	fields := strings.Split(core, ".")
	if len(fields) > len(parts) {
		return parts, fmt.Errorf("version %q has too many components", tag)
	}

	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return parts, fmt.Errorf("version %q: bad component %q", tag, field)
		}
		parts[i] = n
	}

	return parts, nil
}

// Newer reports whether latest is a newer release than current. Unparsable tags are never newer.
func Newer(latest, current string) bool {
	c, err := Compare(latest, current)
	return err == nil && c > 0
}
