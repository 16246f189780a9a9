package lookup

import "regexp"

// livePattern matches "live" as a standalone token. '+' and '-' count as word
// characters, so "live-action" and "alive" do not match while "(Live)" does.
var livePattern = regexp.MustCompile(`(?i)(?:^|[^\w+\-])live(?:[^\w+\-]|$)`)

// WantsLive reports whether the query asks for a live recording.
func WantsLive(query string) bool {
	return livePattern.MatchString(query)
}

// IsLive reports whether any of the candidate's track or collection names,
// censored or not, mark it as a live recording.
func IsLive(c Candidate) bool {
	for _, field := range []string{c.TrackName, c.CollectionName, c.TrackCensoredName, c.CollectionCensoredName} {
		if livePattern.MatchString(field) {
			return true
		}
	}
	return false
}
