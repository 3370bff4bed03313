package mailer

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("mailer client: failed to send email")

	// ErrRenderTemplate возвращается при ошибке рендеринга шаблона письма
	ErrRenderTemplate = errors.New("mailer client: failed to render template")
)
