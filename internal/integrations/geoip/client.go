package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Client клиент для определения локации по IP (ipapi.co-совместимый API)
// Используется для мягкой проверки заявленного резидентства Пуэрто-Рико
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр geoip-клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Lookup определяет локацию по IP
func (c *Client) Lookup(ctx context.Context, ip string) (*Location, error) {
	url := fmt.Sprintf("%s/%s/json", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var location Location
	if err := json.NewDecoder(resp.Body).Decode(&location); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &location, nil
}

// LookupWithGracefulDegradation определяет локацию с graceful degradation
// При недоступности geoip-сервиса возвращает ErrServiceDegraded - проверку
// резидентства в этом случае пропускаем и верим заявлению клиента
func (c *Client) LookupWithGracefulDegradation(ctx context.Context, ip string) (*Location, error) {
	location, err := c.Lookup(ctx, ip)
	if err != nil {
		// Для всех ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation - скидка важнее строгой проверки
		c.log.Error("GeoIP service unavailable, applying graceful degradation for ip=%s: %v", ip, err)
		return nil, fmt.Errorf("%w: ip=%s, error=%v", ErrServiceDegraded, ip, err)
	}

	c.log.Info("Resolved location for ip=%s: country=%s", ip, location.CountryCode)
	return location, nil
}
