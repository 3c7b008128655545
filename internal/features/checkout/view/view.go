// Package view renders the checkout QR payment card.
package view

import (
	"context"
	"io"
	"strconv"
	"strings"

	"storefront/internal/core/i18n"
	"storefront/internal/features/checkout/domain"
	"storefront/internal/features/checkout/service"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// copyScript mirrors service.CopyButton in the browser: the label flips to
// data-copied for the revert delay, and a denied clipboard shows the toast.
const copyScript = `<script>(function(){` +
	`var b=document.getElementById("qr-copy"),t=document.getElementById("qr-toast");if(!b)return;` +
	`b.addEventListener("click",function(){` +
	`navigator.clipboard.writeText(b.dataset.uri).then(function(){` +
	`b.textContent=b.dataset.copied;b.dataset.state="copied";` +
	`setTimeout(function(){b.textContent=b.dataset.label;b.dataset.state="default";},` + "{{delay}}" + `);` +
	`},function(){t.hidden=false;setTimeout(function(){t.hidden=true;},` + "{{delay}}" + `);});});` +
	`})();</script>`

// QRPayment renders the QR image for qr with its copy button. A QR code
// without a URI renders the loading placeholder.
func QRPayment(p *message.Printer, qr *domain.QRCode) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		size := strconv.Itoa(qr.Size())

		b.WriteString(`<section class="qr-payment"><h1>`)
		b.WriteString(templ.EscapeString(p.Sprintf(i18n.KeyQRTitle)))
		b.WriteString(`</h1>`)

		if !qr.Ready() {
			b.WriteString(`<div class="qr-payment__placeholder" style="width:` + size + `px;height:` + size + `px" aria-busy="true">`)
			b.WriteString(templ.EscapeString(p.Sprintf(i18n.KeyQRLoading)))
			b.WriteString(`</div></section>`)
			_, err := io.WriteString(w, b.String())
			return err
		}

		b.WriteString(`<img class="qr-payment__image" src="`)
		b.WriteString(templ.EscapeString(string(templ.URL(qr.ImageURL()))))
		b.WriteString(`" width="` + size + `" height="` + size + `" alt="`)
		b.WriteString(templ.EscapeString(p.Sprintf(i18n.KeyQRTitle)))
		b.WriteString(`">`)

		b.WriteString(`<p>`)
		b.WriteString(templ.EscapeString(p.Sprintf(i18n.KeyQRHint)))
		b.WriteString(`</p>`)

		label := templ.EscapeString(p.Sprintf(i18n.KeyQRCopy))
		b.WriteString(`<button type="button" id="qr-copy" data-state="default" data-uri="`)
		b.WriteString(templ.EscapeString(qr.URI()))
		b.WriteString(`" data-label="` + label + `" data-copied="`)
		b.WriteString(templ.EscapeString(p.Sprintf(i18n.KeyQRCopied)))
		b.WriteString(`">` + label + `</button>`)

		b.WriteString(`<div id="qr-toast" role="alert" hidden>`)
		b.WriteString(templ.EscapeString(p.Sprintf(i18n.KeyQRCopyFailed)))
		b.WriteString(`</div></section>`)

		b.WriteString(strings.ReplaceAll(copyScript, "{{delay}}", strconv.FormatInt(service.RevertAfter.Milliseconds(), 10)))

		_, err := io.WriteString(w, b.String())
		return err
	})
}
