package adapter

import (
	"testing"

	"github.com/MKhiriev/go-channel-reactor/internal/config"
	"github.com/MKhiriev/go-channel-reactor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidChannelURL(t *testing.T) {
	g, err := NewHTTPChannelGateway(config.ClientAdapter{BaseURL: "https://api.example.com"}, logger.Nop())
	require.NoError(t, err)

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"post link", "https://whatsapp.com/channel/ABC123/1", true},
		{"channel link without post", "https://whatsapp.com/channel/0029VbAzDjIBFLgbEyadQb3y", true},
		{"www prefix", "https://www.whatsapp.com/channel/ABC123/10", true},
		{"trailing slash", "https://whatsapp.com/channel/ABC123/10/", true},
		{"surrounding spaces", "  https://whatsapp.com/channel/ABC123/1  ", true},
		{"garbage", "bad", false},
		{"empty", "", false},
		{"wrong host", "https://example.com/channel/ABC123/1", false},
		{"missing channel segment", "https://whatsapp.com/ABC123/1", false},
		{"non-numeric post id", "https://whatsapp.com/channel/ABC123/notanumber", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsValidChannelURL(tt.url))
		})
	}
}

func TestParseChannelURL(t *testing.T) {
	t.Run("extracts channel and post ids", func(t *testing.T) {
		channelID, postID, ok := ParseChannelURL("https://whatsapp.com/channel/0029VbAzDjIBFLgbEyadQb3y/178")

		require.True(t, ok)
		assert.Equal(t, "0029VbAzDjIBFLgbEyadQb3y", channelID)
		assert.Equal(t, "178", postID)
	})

	t.Run("channel link without post yields no extraction", func(t *testing.T) {
		_, _, ok := ParseChannelURL("https://whatsapp.com/channel/0029VbAzDjIBFLgbEyadQb3y")
		assert.False(t, ok)
	})

	t.Run("invalid url yields no extraction", func(t *testing.T) {
		_, _, ok := ParseChannelURL("bad")
		assert.False(t, ok)
	})
}
