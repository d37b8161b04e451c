package mood

import "strings"

// Emoji sentiment classes. Unlisted emoji are neutral and only feed
// recency, not tone.
var (
	positiveEmoji = map[string]bool{
		"👍": true, "❤️": true, "🔥": true, "😂": true, "🎉": true,
		"💯": true, "🙏": true, "😊": true, "👏": true,
	}
	negativeEmoji = map[string]bool{
		"👎": true, "💩": true, "🤮": true, "😡": true, "🤬": true,
		"😠": true, "🖕": true,
	}
	hostileEmoji = map[string]bool{
		"😡": true, "🤬": true, "🖕": true,
	}
)

// Lexical cues for message-text sentiment. Matching is substring-based over
// the lowercased payload, so short stems cover inflected Russian forms.
var (
	positiveCues = []string{
		"thank", "thx", "great", "awesome", "love it", "perfect", "nice",
		"спасибо", "класс", "супер", "отлично", "красав", "молодец",
	}
	negativeCues = []string{
		"this is wrong", "not working", "broken", "useless", "terrible",
		"awful", "hate", "не работает", "плохо", "ужас", "бесит", "фигня",
	}
	hostileCues = []string{
		"shut up", "stupid", "idiot", "fuck", "заткнись", "тупой",
		"идиот", "отстань",
	}
)

// textSentiment classifies a message payload into a tone delta. Hostile cues
// dominate, then negative, then positive; most messages match nothing.
func textSentiment(payload string) (positive, negative, hostile bool) {
	lower := strings.ToLower(payload)
	for _, cue := range hostileCues {
		if strings.Contains(lower, cue) {
			return false, true, true
		}
	}
	for _, cue := range negativeCues {
		if strings.Contains(lower, cue) {
			return false, true, false
		}
	}
	for _, cue := range positiveCues {
		if strings.Contains(lower, cue) {
			return true, false, false
		}
	}
	return false, false, false
}

// feedbackDelta maps an owner reaction on an assistant message to a model
// feedback adjustment. Zero means the emoji carries no feedback signal.
func feedbackDelta(emoji string) float64 {
	switch {
	case positiveEmoji[emoji]:
		return 1
	case negativeEmoji[emoji]:
		return -1
	default:
		return 0
	}
}
