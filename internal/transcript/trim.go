// Package transcript holds the single transformation applied to a transcript
// between transcription and generation: a hard character-budget cut.
package transcript

// Trim returns the first max characters of s, reporting whether anything was
// cut. A transcript at or under budget comes back unchanged, so trimming is
// idempotent. The cut is by character count only and may land mid caption
// block; the consumer is a language model, not an SRT parser.
func Trim(s string, max int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= max {
		return s, false
	}
	return string(runes[:max]), true
}
