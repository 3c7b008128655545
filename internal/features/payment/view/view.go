// Package view renders the payment result pages.
package view

import (
	"context"
	"io"

	"storefront/internal/core/i18n"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// Navigation targets offered after a failed payment.
const (
	CartPath = "/cart"
	HomePath = "/"
)

// Failure renders the payment failure notice with links back to the cart
// and the home page.
func Failure(p *message.Printer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main class="payment-failure">`+
			`<h1>`+templ.EscapeString(p.Sprintf(i18n.KeyFailureTitle))+`</h1>`+
			`<p>`+templ.EscapeString(p.Sprintf(i18n.KeyFailureBody))+`</p>`+
			`<nav><a class="button button--primary" href="`+string(templ.URL(CartPath))+`">`+
			templ.EscapeString(p.Sprintf(i18n.KeyFailureCart))+`</a> `+
			`<a class="button" href="`+string(templ.URL(HomePath))+`">`+
			templ.EscapeString(p.Sprintf(i18n.KeyFailureHome))+`</a></nav>`+
			`<footer><small>`+templ.EscapeString(p.Sprintf(i18n.KeyFailureFooter))+`</small></footer>`+
			`</main>`)
		return err
	})
}
