package respond

import (
	"strconv"
	"strings"
)

type format int

const (
	formatJSON format = iota
	formatCBOR
)

// Specificity of a media range against a format, higher wins on equal q.
const (
	specNone = iota - 1
	specAny
	specTypeWildcard
	specBase
	specProblem
)

type mediaRange struct {
	typ string
	q   float64
}

// parseAccept splits an Accept header into lower-cased media ranges. A
// missing or malformed q parameter counts as 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		params := strings.Split(part, ";")
		typ := strings.ToLower(strings.TrimSpace(params[0]))
		if !strings.Contains(typ, "/") {
			continue
		}
		q := 1.0
		for _, p := range params[1:] {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || strings.TrimSpace(k) != "q" {
				continue
			}
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && parsed >= 0 && parsed <= 1 {
				q = parsed
			}
		}
		ranges = append(ranges, mediaRange{typ: typ, q: q})
	}
	return ranges
}

func specificity(typ string, f format) int {
	base, problem := "application/json", "application/problem+json"
	if f == formatCBOR {
		base, problem = "application/cbor", "application/problem+cbor"
	}
	switch typ {
	case problem:
		return specProblem
	case base:
		return specBase
	case "application/*":
		return specTypeWildcard
	case "*/*":
		return specAny
	default:
		return specNone
	}
}

// rank returns the q-value and specificity of the most specific range that
// matches f.
func rank(ranges []mediaRange, f format) (float64, int) {
	bestQ, bestSpec := 0.0, specNone
	for _, mr := range ranges {
		s := specificity(mr.typ, f)
		if s == specNone {
			continue
		}
		if s > bestSpec || (s == bestSpec && mr.q > bestQ) {
			bestQ, bestSpec = mr.q, s
		}
	}
	return bestQ, bestSpec
}

// selectFormat picks CBOR only when the client ranks it strictly above JSON
// by q-value, or equal q with a more specific range. Everything else is JSON.
func selectFormat(accept string) format {
	ranges := parseAccept(accept)
	if len(ranges) == 0 {
		return formatJSON
	}
	cq, cs := rank(ranges, formatCBOR)
	jq, js := rank(ranges, formatJSON)
	if cq == 0 {
		return formatJSON
	}
	if cq > jq || (cq == jq && cs > js) {
		return formatCBOR
	}
	return formatJSON
}
