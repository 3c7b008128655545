// Package i18n holds the storefront copy catalog and request language resolution.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangParam is the query parameter used to force a language.
const LangParam = "lang"

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Message keys.
const (
	KeyHomeTitle = "home.title"

	KeyFailureTitle  = "payment.failure.title"
	KeyFailureBody   = "payment.failure.body"
	KeyFailureCart   = "payment.failure.cart"
	KeyFailureHome   = "payment.failure.home"
	KeyFailureFooter = "payment.failure.footer"

	KeyQRTitle      = "checkout.qr.title"
	KeyQRHint       = "checkout.qr.hint"
	KeyQRLoading    = "checkout.qr.loading"
	KeyQRCopy       = "checkout.qr.copy"
	KeyQRCopied     = "checkout.qr.copied"
	KeyQRCopyFailed = "checkout.qr.copy_failed"
)

var catalog = map[language.Tag]map[string]string{
	language.English: {
		KeyHomeTitle: "Storefront",

		KeyFailureTitle:  "Payment failed",
		KeyFailureBody:   "We couldn't process your payment. No money was charged, and your cart is still saved.",
		KeyFailureCart:   "Back to cart",
		KeyFailureHome:   "Continue shopping",
		KeyFailureFooter: "If the problem persists, try another payment method or contact support.",

		KeyQRTitle:      "Scan to pay",
		KeyQRHint:       "Open any UPI app and scan the code, or copy the payment link.",
		KeyQRLoading:    "Generating QR code…",
		KeyQRCopy:       "Copy payment link",
		KeyQRCopied:     "Copied!",
		KeyQRCopyFailed: "Could not copy to clipboard",
	},
	language.Spanish: {
		KeyHomeTitle: "Tienda",

		KeyFailureTitle:  "El pago falló",
		KeyFailureBody:   "No pudimos procesar tu pago. No se realizó ningún cobro y tu carrito sigue guardado.",
		KeyFailureCart:   "Volver al carrito",
		KeyFailureHome:   "Seguir comprando",
		KeyFailureFooter: "Si el problema continúa, prueba otro método de pago o contacta a soporte.",

		KeyQRTitle:      "Escanea para pagar",
		KeyQRHint:       "Abre cualquier app UPI y escanea el código, o copia el enlace de pago.",
		KeyQRLoading:    "Generando código QR…",
		KeyQRCopy:       "Copiar enlace de pago",
		KeyQRCopied:     "¡Copiado!",
		KeyQRCopyFailed: "No se pudo copiar al portapapeles",
	},
}

func init() {
	for tag, messages := range catalog {
		for key, text := range messages {
			if err := message.SetString(tag, key, text); err != nil {
				panic("i18n: " + err.Error())
			}
		}
	}
}

// Default returns the fallback language.
func Default() language.Tag {
	return supported[0]
}

// Supported returns the languages with a catalog.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Resolve picks the catalog language from an explicit lang value first and
// the Accept-Language header second.
func Resolve(lang, acceptLanguage string) language.Tag {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			return match(tag)
		}
	}

	if accept := strings.TrimSpace(acceptLanguage); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return match(tags...)
		}
	}

	return Default()
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

func match(tags ...language.Tag) language.Tag {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}
