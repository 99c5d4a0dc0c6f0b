// Package verdict turns free-text model replies into structured decisions.
//
// The models are instructed to answer in a line-oriented KEY: value grammar.
// Parsing is deliberately tolerant of extra prose around the markers, at the
// cost of being fooled by adversarial replies: marker matching is a
// case-insensitive substring test on each line (CORRECTED/MATCHES excepted,
// which must start the line), and a boolean field is true whenever the word
// "true" appears anywhere after its marker. That substring rule accepts
// replies like "APPROVED: the answer is true" — known looseness, kept because
// stored verdicts and the front end depend on the existing behavior. Lines
// with no recognized marker are ignored; later lines overwrite earlier values
// for the same field.
package verdict

import (
	"strconv"
	"strings"
)

// Moderation is the decision extracted from a content or image moderation
// reply.
type Moderation struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
}

// ClaimReview is the decision extracted from an ownership claim review reply.
type ClaimReview struct {
	Approved   bool   `json:"approved"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
}

// Value is the decision extracted from an item value evaluation reply.
type Value struct {
	HighValue bool   `json:"highValue"`
	Reason    string `json:"reason"`
}

// Search is the corrected query and match ID list extracted from a search
// reply.
type Search struct {
	Corrected string
	MatchIDs  []string
}

// ParseModeration extracts an APPROVED/REASON pair, starting from def. A
// reply with no recognized markers returns def unchanged.
func ParseModeration(raw string, def Moderation) Moderation {
	v := def
	for _, line := range strings.Split(raw, "\n") {
		if rest, ok := after(line, "APPROVED:"); ok {
			v.Approved = containsTrue(rest)
		} else if _, ok := after(line, "REASON:"); ok {
			v.Reason = afterColon(line, v.Reason)
		}
	}
	return v
}

// ParseClaimReview extracts APPROVED, CONFIDENCE and REASON, starting from
// def.
func ParseClaimReview(raw string, def ClaimReview) ClaimReview {
	v := def
	for _, line := range strings.Split(raw, "\n") {
		if rest, ok := after(line, "APPROVED:"); ok {
			v.Approved = containsTrue(rest)
		} else if rest, ok := after(line, "CONFIDENCE:"); ok {
			v.Confidence = parseConfidence(rest)
		} else if _, ok := after(line, "REASON:"); ok {
			v.Reason = afterColon(line, v.Reason)
		}
	}
	return v
}

// ParseValue extracts HIGH_VALUE and REASON, starting from def.
func ParseValue(raw string, def Value) Value {
	v := def
	for _, line := range strings.Split(raw, "\n") {
		if rest, ok := after(line, "HIGH_VALUE:"); ok {
			v.HighValue = containsTrue(rest)
		} else if _, ok := after(line, "REASON:"); ok {
			v.Reason = afterColon(line, v.Reason)
		}
	}
	return v
}

// ParseSearch extracts the corrected query and matching IDs. Unlike the other
// parsers, CORRECTED and MATCHES must start the line. The corrected query
// defaults to the user's original query; the literal token "none" means an
// empty match set.
func ParseSearch(raw, query string) Search {
	v := Search{Corrected: query}
	for _, line := range strings.Split(raw, "\n") {
		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "CORRECTED:") {
			v.Corrected = afterColon(line, v.Corrected)
		} else if strings.HasPrefix(upper, "MATCHES:") {
			rest := strings.TrimSpace(line[len("MATCHES:"):])
			if strings.EqualFold(rest, "none") {
				v.MatchIDs = nil
				continue
			}
			var ids []string
			for _, tok := range strings.Split(rest, ",") {
				if tok = strings.TrimSpace(tok); tok != "" {
					ids = append(ids, tok)
				}
			}
			v.MatchIDs = ids
		}
	}
	return v
}

// after reports whether line contains marker (case-insensitive) and returns
// the text following it.
func after(line, marker string) (string, bool) {
	idx := strings.Index(strings.ToUpper(line), marker)
	if idx < 0 {
		return "", false
	}
	return line[idx+len(marker):], true
}

// containsTrue implements the boolean rule: true iff the substring "true"
// appears anywhere after the marker.
func containsTrue(rest string) bool {
	return strings.Contains(strings.ToLower(rest), "true")
}

// afterColon returns the trimmed text after the first ':' in the line, or def
// when the line has no colon.
func afterColon(line, def string) string {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return def
	}
	return strings.TrimSpace(rest)
}

// parseConfidence extracts the digit characters following the marker, keeps
// at most the first three, and parses them. Anything unparseable is 0.
func parseConfidence(rest string) int {
	var digits []byte
	for i := 0; i < len(rest) && len(digits) < 3; i++ {
		if rest[i] >= '0' && rest[i] <= '9' {
			digits = append(digits, rest[i])
		}
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}
