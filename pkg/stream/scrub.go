package stream

import (
	"fmt"
	"regexp"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

// crashCodes maps sentinel names to the error code their appearance implies.
// A crash sentinel in the stream means the backend is reporting its own
// failure inline instead of erroring, so the attempt aborts immediately.
var crashCodes = map[string]models.ErrorCode{
	"model_crashed":    models.CodeLocalCrashed,
	"no_models_loaded": models.CodeModelNotLoaded,
}

type compiledSentinel struct {
	name        string
	re          *regexp.Regexp
	replacement string
}

// Scrubber removes sentinel markers from model output. All patterns are
// compiled eagerly at creation time; an invalid pattern fails construction
// rather than silently passing markers through.
type Scrubber struct {
	patterns []compiledSentinel
}

// NewScrubber compiles the configured sentinel patterns.
func NewScrubber(patterns []config.SentinelPattern) (*Scrubber, error) {
	s := &Scrubber{patterns: make([]compiledSentinel, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("sentinel %s: %w", p.Name, err)
		}
		s.patterns = append(s.patterns, compiledSentinel{
			name:        p.Name,
			re:          re,
			replacement: p.Replacement,
		})
	}
	return s, nil
}

// Apply scrubs every sentinel from text and returns the names of the
// patterns that matched.
func (s *Scrubber) Apply(text string) (string, []string) {
	var hits []string
	for _, p := range s.patterns {
		if !p.re.MatchString(text) {
			continue
		}
		hits = append(hits, p.name)
		text = p.re.ReplaceAllString(text, p.replacement)
	}
	return text, hits
}

// CrashSentinel reports whether text contains a sentinel that signals a
// backend crash, and the error code it maps to.
func (s *Scrubber) CrashSentinel(text string) (string, models.ErrorCode, bool) {
	for _, p := range s.patterns {
		code, crash := crashCodes[p.name]
		if !crash {
			continue
		}
		if p.re.MatchString(text) {
			return p.name, code, true
		}
	}
	return "", "", false
}
