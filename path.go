package formflat

import (
	"fmt"
	"strings"
)

// segment is one step of a bracket key. "a[b][]" parses to the segments
// {Key: "a"}, {Key: "b"}, {Append: true}.
type segment struct {
	Key    string
	Append bool // true for []
}

func parseKey(key string) ([]segment, error) {
	var path []segment
	i := strings.IndexByte(key, '[')
	if i == -1 {
		return []segment{{Key: key}}, nil
	}
	path = append(path, segment{Key: key[:i]})
	key = key[i:]

	for len(key) > 0 {
		if key[0] != '[' {
			return nil, fmt.Errorf("form: invalid key syntax: unexpected %q", key)
		}
		key = key[1:]
		j := strings.IndexByte(key, ']')
		if j == -1 {
			return nil, fmt.Errorf("form: invalid key syntax: missing ]")
		}

		part := key[:j]
		if part == "" {
			path = append(path, segment{Append: true})
		} else {
			path = append(path, segment{Key: part})
		}
		key = key[j+1:]
	}
	return path, nil
}
