package describer

import (
	_ "embed"
)

// StyleGuide is the full set of formatting and content rules sent as the
// system instruction on every call. It is a versioned data asset: edit the
// .txt file, never derive logic from it in code. The pipeline's only job is to
// transmit it unchanged.
//
//go:embed styleguide.txt
var StyleGuide string

const userPreamble = "Here is the SRT transcript for the video. " +
	"Please generate the full YouTube description with timestamps " +
	"following all the rules in your instructions.\n\n"

// UserMessage wraps the transcript with the fixed preamble.
func UserMessage(transcript string) string {
	return userPreamble + transcript
}
