package view

import (
	"bytes"
	"context"
	"testing"

	"storefront/internal/features/banners/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderMarquee(t *testing.T, messages []domain.BannerMessage, loading bool) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Marquee(messages, loading).Render(context.Background(), &buf))
	return buf.String()
}

func TestText(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", Text(nil))
	})

	t.Run("Single", func(t *testing.T) {
		assert.Equal(t, "Sale! ✨ Sale!", Text([]domain.BannerMessage{{Order: 1, Message: "Sale!", Enabled: true}}))
	})

	t.Run("Multiple", func(t *testing.T) {
		messages := []domain.BannerMessage{
			{Order: 1, Message: "Sale!"},
			{Order: 2, Message: "Free shipping"},
		}
		assert.Equal(t, "Sale! ✨ Free shipping ✨ Sale! ✨ Free shipping", Text(messages))
	})
}

func TestMarquee(t *testing.T) {
	t.Run("EmptyRendersNothing", func(t *testing.T) {
		assert.Empty(t, renderMarquee(t, []domain.BannerMessage{}, false))
	})

	t.Run("LoadingRendersNothing", func(t *testing.T) {
		assert.Empty(t, renderMarquee(t, []domain.BannerMessage{{Order: 1, Message: "Sale!"}}, true))
	})

	t.Run("RendersLoop", func(t *testing.T) {
		out := renderMarquee(t, []domain.BannerMessage{{Order: 1, Message: "Sale!", Enabled: true}}, false)
		assert.Contains(t, out, "Sale! ✨ Sale!")
		assert.Contains(t, out, "animation-play-state:paused")
	})

	t.Run("EscapesMessages", func(t *testing.T) {
		out := renderMarquee(t, []domain.BannerMessage{{Order: 1, Message: "<b>50%</b> off"}}, false)
		assert.Contains(t, out, "&lt;b&gt;50%&lt;/b&gt; off")
		assert.NotContains(t, out, "<b>")
	})
}
