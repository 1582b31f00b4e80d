package adapter

import (
	"regexp"
	"strings"
)

// channelURLPattern is the fixed positional shape of a channel post link:
// scheme, optional www, "/channel/", channel identifier, optional numeric
// post identifier.
var channelURLPattern = regexp.MustCompile(`^https?://(?:www\.)?whatsapp\.com/channel/([A-Za-z0-9]+)(?:/([0-9]+))?/?$`)

// ParseChannelURL extracts the channel and post identifiers from rawURL.
// ok is true only when both identifiers are present; a channel link without
// a post number is a valid URL but yields no extraction.
func ParseChannelURL(rawURL string) (channelID, postID string, ok bool) {
	m := channelURLPattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil || m[2] == "" {
		return "", "", false
	}

	return m[1], m[2], true
}
