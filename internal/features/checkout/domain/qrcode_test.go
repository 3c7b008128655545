package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "upi%3A%2F%2Fpay%3Fpa%3Dtest%40bank%26am%3D10", EncodeURIComponent("upi://pay?pa=test@bank&am=10"))
	assert.Equal(t, "a%20b", EncodeURIComponent("a b"))
}

func TestImageURL(t *testing.T) {
	t.Run("DefaultTemplate", func(t *testing.T) {
		got := ImageURL("", "upi://pay?pa=test@bank&am=10", 256)
		assert.Equal(t,
			"https://api.qrserver.com/v1/create-qr-code/?size=256x256&data=upi%3A%2F%2Fpay%3Fpa%3Dtest%40bank%26am%3D10&format=svg",
			got)
	})

	t.Run("SizeFallsBackToDefault", func(t *testing.T) {
		assert.Contains(t, ImageURL("", "x", 0), "size=256x256")
		assert.Contains(t, ImageURL("", "x", -5), "size=256x256")
	})

	t.Run("CustomTemplate", func(t *testing.T) {
		assert.Equal(t, "https://qr.test/300?d=upi%3A%2F%2Fpay", ImageURL("https://qr.test/{size}?d={data}", "upi://pay", 300))
	})
}

func TestQRCode(t *testing.T) {
	t.Run("RecomputesOnChange", func(t *testing.T) {
		q := NewQRCode("", "upi://pay?pa=a@bank", 0)
		assert.True(t, q.Ready())
		assert.Equal(t, 256, q.Size())
		first := q.ImageURL()

		q.SetURI("upi://pay?pa=b@bank")
		assert.NotEqual(t, first, q.ImageURL())
		assert.Contains(t, q.ImageURL(), "b%40bank")

		q.SetSize(512)
		assert.Contains(t, q.ImageURL(), "size=512x512")
		assert.Equal(t, 512, q.Size())
	})

	t.Run("EmptyURIIsPlaceholder", func(t *testing.T) {
		q := NewQRCode("", "", 256)
		assert.False(t, q.Ready())
		assert.Empty(t, q.ImageURL())

		q.SetURI("upi://pay")
		assert.True(t, q.Ready())

		q.SetURI("  ")
		assert.False(t, q.Ready())
	})
}
