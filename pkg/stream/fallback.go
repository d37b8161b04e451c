package stream

import "github.com/Pavua/krab/pkg/models"

// fallbackTexts are the short user-facing replacements sent when an attempt
// fails terminally. Raw backend errors never reach chat surfaces; the full
// detail goes to ops only.
var fallbackTexts = map[models.ErrorCode]string{
	models.CodeQueueFull:  "I have too much queued up in this chat right now. Give me a minute and try again.",
	models.CodeDuplicate:  "I already got that one.",
	models.CodeSLATimeout: "That took longer than I allow myself. Try again, or simplify the ask.",
	models.CodeCancelled:  "Cancelled.",

	models.CodeLocalUnavailable: "My local model is offline at the moment. Try again shortly.",
	models.CodeLocalCrashed:     "My local model just fell over. It should recover shortly.",
	models.CodeModelNotLoaded:   "No model is loaded locally right now. It should recover shortly.",

	models.CodeUpstreamUnreachable: "I could not reach the upstream model. Try again shortly.",
	models.CodeUpstream5xx:         "The upstream model had a server-side problem. Try again shortly.",
	models.CodeUpstreamTimeout:     "The upstream model stopped responding mid-answer.",
	models.CodeHTMLInAPI:           "The upstream model answered with something that was not an answer. Try again shortly.",

	models.CodeAuthInvalid:    "My upstream credentials were rejected. The owner has been notified.",
	models.CodeQuotaExhausted: "I am out of quota on that model for now.",
	models.CodeBadRequest:     "That request was rejected as malformed. A different phrasing may work.",

	models.CodeLoopDetected:   "I caught myself repeating and stopped. Try rephrasing.",
	models.CodeReasoningLimit: "I was overthinking that one and stopped myself. Try rephrasing.",
	models.CodeSentinelLeak:   "My answer came out garbled, so I dropped it. Try again.",

	models.CodeBlockedConfirmExpensive: "That needs a paid model. Reply \"yes\" within a minute to confirm, or rephrase.",
	models.CodeBlockedNotOwner:         "Only my owner can do that.",
}

const fallbackDefault = "Something went wrong on my side. Try again shortly."

// FallbackText returns the deterministic user-facing message for an error
// code.
func FallbackText(code models.ErrorCode) string {
	if text, ok := fallbackTexts[code]; ok {
		return text
	}
	return fallbackDefault
}
