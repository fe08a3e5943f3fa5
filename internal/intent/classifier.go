package intent

import "strings"

const (
	// confidenceEmptyInput marks messages that were empty or whitespace-only,
	// so callers can tell malformed input apart from unrecognized text.
	confidenceEmptyInput = 0.3
	// confidenceNoMatch marks valid text that matched no lexicon entry.
	confidenceNoMatch = 0.5
	// maxConfidence caps the returned score. Exact 1.0 is reserved to signal
	// "not computed by this path".
	maxConfidence = 0.99
)

// Classifier scores messages against a fixed lexicon. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	lexicon Lexicon
}

func NewClassifier(lexicon Lexicon) *Classifier {
	return &Classifier{lexicon: lexicon}
}

// Classify resolves a message to the best-scoring intent. Matching is plain
// substring containment, so short keywords can match mid-word; the lexicon
// keeps phrases long enough to make that an acceptable recall trade-off.
// Classify never fails: malformed input degrades to the generic intent.
func (c *Classifier) Classify(message string) Classification {
	normalized := strings.ToLower(strings.TrimSpace(message))
	if normalized == "" {
		return Classification{Intent: Generic, Confidence: confidenceEmptyInput}
	}

	best := Classification{Intent: Generic, Confidence: 0}
	matched := false

	for _, entry := range c.lexicon {
		if len(entry.Keywords) == 0 {
			continue
		}

		hits := 0
		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, keyword) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}

		score := float64(hits) / float64(len(entry.Keywords)) * entry.BaseConfidence

		// Strictly-greater comparison implements the tie-break: on equal
		// scores the earliest lexicon entry keeps the win.
		if !matched || score > best.Confidence {
			best = Classification{Intent: entry.Intent, Confidence: score}
			matched = true
		}
	}

	if !matched {
		return Classification{Intent: Generic, Confidence: confidenceNoMatch}
	}

	if best.Confidence > maxConfidence {
		best.Confidence = maxConfidence
	}

	return best
}
