package stream

import "strings"

// Tail repetition unit bounds. Units shorter than minLoopUnit are normal
// prose ("a a a" in a quote); longer than maxLoopUnit costs too much to
// check per chunk.
const (
	minLoopUnit = 8
	maxLoopUnit = 120
)

// paragraphLoop reports whether any paragraph repeats at least n times in a
// row. The trailing paragraph is ignored while it may still be growing.
func paragraphLoop(text string, n int) bool {
	if n <= 1 {
		return false
	}
	raw := strings.Split(text, "\n\n")
	if len(raw) > 1 {
		raw = raw[:len(raw)-1]
	}
	paras := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}
	run := 1
	for i := 1; i < len(paras); i++ {
		if paras[i] == paras[i-1] {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// tailRepetition reports whether the tail of text is the same unit repeated
// at least n times back to back, which catches token-level degeneration that
// never produces a paragraph break.
func tailRepetition(text string, n int) bool {
	if n <= 1 {
		return false
	}
	for unit := minLoopUnit; unit <= maxLoopUnit; unit++ {
		span := unit * n
		if span > len(text) {
			break
		}
		tail := text[len(text)-span:]
		base := tail[:unit]
		repeated := true
		for i := 1; i < n; i++ {
			if tail[i*unit:(i+1)*unit] != base {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}
	return false
}
