package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClipboard struct {
	text string
	err  error
}

func (c *recordingClipboard) WriteText(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type recordingNotifier struct {
	copied []string
	failed []error
}

func (n *recordingNotifier) Copied(text string)   { n.copied = append(n.copied, text) }
func (n *recordingNotifier) CopyFailed(err error) { n.failed = append(n.failed, err) }

func execute(t *testing.T, clip *recordingClipboard, notifier *recordingNotifier, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(clip, notifier)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPayQR(t *testing.T) {
	const uri = "upi://pay?pa=test@bank&am=10"

	t.Run("PrintsImageURL", func(t *testing.T) {
		clip := &recordingClipboard{}
		out, err := execute(t, clip, &recordingNotifier{}, uri)
		require.NoError(t, err)
		assert.Equal(t,
			"https://api.qrserver.com/v1/create-qr-code/?size=256x256&data=upi%3A%2F%2Fpay%3Fpa%3Dtest%40bank%26am%3D10&format=svg\n",
			out)
		assert.Empty(t, clip.text)
	})

	t.Run("Size", func(t *testing.T) {
		out, err := execute(t, &recordingClipboard{}, &recordingNotifier{}, "--size", "512", uri)
		require.NoError(t, err)
		assert.Contains(t, out, "size=512x512")
	})

	t.Run("Copy", func(t *testing.T) {
		clip := &recordingClipboard{}
		notifier := &recordingNotifier{}
		out, err := execute(t, clip, notifier, "--copy", uri)
		require.NoError(t, err)
		assert.Equal(t, uri, clip.text)
		assert.Equal(t, []string{uri}, notifier.copied)
		assert.Contains(t, out, "copied: "+uri)
	})

	t.Run("CopyDenied", func(t *testing.T) {
		denied := errors.New("denied")
		notifier := &recordingNotifier{}
		_, err := execute(t, &recordingClipboard{err: denied}, notifier, "--copy", uri)
		require.Error(t, err)
		assert.ErrorIs(t, err, denied)
		assert.Equal(t, []error{denied}, notifier.failed)
	})

	t.Run("EmptyURI", func(t *testing.T) {
		_, err := execute(t, &recordingClipboard{}, &recordingNotifier{}, "")
		assert.Error(t, err)
	})

	t.Run("MissingArg", func(t *testing.T) {
		_, err := execute(t, &recordingClipboard{}, &recordingNotifier{})
		assert.Error(t, err)
	})
}
