package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultSize is the QR image width and height in pixels.
const DefaultSize = 256

// DefaultImageTemplate is the QR image service URL. {size} and {data} are
// replaced by the pixel size and the encoded payment URI.
const DefaultImageTemplate = "https://api.qrserver.com/v1/create-qr-code/?size={size}x{size}&data={data}&format=svg"

// EncodeURIComponent percent-encodes s for use as a single query value,
// with spaces as %20 rather than "+".
func EncodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ImageURL builds the QR image URL for uri. An empty template falls back to
// DefaultImageTemplate and a size <= 0 to DefaultSize.
func ImageURL(template, uri string, size int) string {
	if template == "" {
		template = DefaultImageTemplate
	}
	if size <= 0 {
		size = DefaultSize
	}
	return strings.NewReplacer(
		"{size}", strconv.Itoa(size),
		"{data}", EncodeURIComponent(uri),
	).Replace(template)
}

// QRCode is a payment URI rendered as a QR image. The image URL follows the
// URI and size; an empty URI has no image yet.
type QRCode struct {
	template string
	uri      string
	size     int
	imageURL string
}

// NewQRCode creates a QRCode and computes its image URL.
func NewQRCode(template, uri string, size int) *QRCode {
	q := &QRCode{template: template, uri: uri, size: size}
	q.recompute()
	return q
}

// SetURI changes the payment URI and recomputes the image URL.
func (q *QRCode) SetURI(uri string) {
	if uri == q.uri {
		return
	}
	q.uri = uri
	q.recompute()
}

// SetSize changes the pixel size and recomputes the image URL.
func (q *QRCode) SetSize(size int) {
	if size == q.size {
		return
	}
	q.size = size
	q.recompute()
}

// URI returns the raw payment URI.
func (q *QRCode) URI() string { return q.uri }

// Size returns the effective pixel size.
func (q *QRCode) Size() int {
	if q.size <= 0 {
		return DefaultSize
	}
	return q.size
}

// ImageURL returns the QR image URL, or "" while there is no URI.
func (q *QRCode) ImageURL() string { return q.imageURL }

// Ready reports whether the image URL has been computed.
func (q *QRCode) Ready() bool { return q.imageURL != "" }

func (q *QRCode) recompute() {
	if strings.TrimSpace(q.uri) == "" {
		q.imageURL = ""
		return
	}
	q.imageURL = ImageURL(q.template, q.uri, q.size)
}
