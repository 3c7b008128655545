// Package view renders the promotional marquee.
package view

import (
	"context"
	"io"
	"strings"

	"storefront/internal/features/banners/domain"

	"github.com/a-h/templ"
)

// Separator sits between messages and between the two copies of the loop.
const Separator = " ✨ "

const style = `<style>` +
	`.marquee{overflow:hidden;white-space:nowrap;background:#111;color:#fff;padding:.5rem 0}` +
	`.marquee__track{display:inline-block;padding-left:100%;animation:marquee-scroll 30s linear infinite}` +
	`.marquee:hover .marquee__track{animation-play-state:paused}` +
	`@keyframes marquee-scroll{from{transform:translateX(0)}to{transform:translateX(-100%)}}` +
	`</style>`

// Text joins the message texts and repeats the result once so the scroll can
// wrap without a visible gap. It returns "" for an empty collection.
func Text(messages []domain.BannerMessage) string {
	texts := domain.Texts(messages)
	if len(texts) == 0 {
		return ""
	}
	joined := strings.Join(texts, Separator)
	return joined + Separator + joined
}

// Marquee renders the ticker. Nothing is written while loading or when there
// is nothing to show.
func Marquee(messages []domain.BannerMessage, loading bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if loading {
			return nil
		}
		text := Text(messages)
		if text == "" {
			return nil
		}
		_, err := io.WriteString(w, style+
			`<div class="marquee" role="marquee" aria-live="off"><div class="marquee__track">`+
			templ.EscapeString(text)+`</div></div>`)
		return err
	})
}
