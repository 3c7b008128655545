// Package render writes templ components as Fiber responses.
package render

import (
	"context"
	"io"

	"storefront/internal/core/i18n"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HTML renders component with the given status code.
func HTML(c *fiber.Ctx, status int, component templ.Component) error {
	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.UserContext(), c.Response().BodyWriter())
}

// Language resolves the request language from the lang query parameter and
// the Accept-Language header.
func Language(c *fiber.Ctx) language.Tag {
	return i18n.Resolve(c.Query(i18n.LangParam), c.Get(fiber.HeaderAcceptLanguage))
}

// Printer returns the message printer for the request language.
func Printer(c *fiber.Ctx) *message.Printer {
	return i18n.Printer(Language(c))
}

// Page wraps body in the storefront document shell.
func Page(lang language.Tag, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="`+templ.EscapeString(lang.String())+`"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1"><title>`+
			templ.EscapeString(title)+`</title></head><body>`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
