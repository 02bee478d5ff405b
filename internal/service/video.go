package service

import (
	"regexp"

	"github.com/pkordes/tourbook/backend/internal/domain"
)

var (
	youtubeURL = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:youtube\.com/(?:watch\?v=|embed/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	vimeoURL   = regexp.MustCompile(`^(?:https?://)?(?:www\.)?vimeo\.com/(\d+)`)
)

// ParseVideoURL recognises YouTube watch, embed and short links and vimeo.com
// links. ok is false for any other URL.
func ParseVideoURL(raw string) (v domain.VideoEmbed, ok bool) {
	if m := youtubeURL.FindStringSubmatch(raw); m != nil {
		return domain.VideoEmbed{ID: m[1], URL: raw, Type: domain.VideoYouTube}, true
	}
	if m := vimeoURL.FindStringSubmatch(raw); m != nil {
		return domain.VideoEmbed{ID: m[1], URL: raw, Type: domain.VideoVimeo}, true
	}
	return domain.VideoEmbed{}, false
}

// EmbedURL returns the player URL for v, or "" for an unknown host or a
// missing ID.
func EmbedURL(v domain.VideoEmbed) string {
	if v.ID == "" {
		return ""
	}
	switch v.Type {
	case domain.VideoYouTube:
		return "https://www.youtube.com/embed/" + v.ID
	case domain.VideoVimeo:
		return "https://player.vimeo.com/video/" + v.ID
	default:
		return ""
	}
}
