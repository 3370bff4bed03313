package geoip

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geoip client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geoip client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что geoip-сервис недоступен и проверку резидентства следует пропустить
	ErrServiceDegraded = errors.New("geoip unavailable: graceful degradation applied")
)
