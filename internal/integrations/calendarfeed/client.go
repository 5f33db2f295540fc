package calendarfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
)

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client cliente HTTP del feed de calendario externo
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient crea un nuevo cliente del feed de calendario
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// ListEvents obtiene los eventos del calendario dentro de la ventana [timeMin, timeMax]
func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]Event, error) {
	query := url.Values{}
	query.Set("timeMin", timeMin.Format(time.RFC3339))
	query.Set("timeMax", timeMax.Format(time.RFC3339))

	req, err := c.newRequest(ctx, http.MethodGet, "/events?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return events, nil
}

// BusyIntervals obtiene los intervalos ocupados del calendario.
// Los eventos sin start.dateTime o end.dateTime (malformados o de día completo)
// se descartan individualmente: un evento inválido no bloquea el resto del cálculo.
func (c *Client) BusyIntervals(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error) {
	events, err := c.ListEvents(ctx, timeMin, timeMax)
	if err != nil {
		return nil, err
	}

	intervals := make([]domain.BusyInterval, 0, len(events))
	for _, ev := range events {
		if ev.Start.DateTime == "" || ev.End.DateTime == "" {
			continue
		}

		start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
		if err != nil {
			c.log.Warn("BusyIntervals: skipping event id=%s with invalid start %q: %v", ev.ID, ev.Start.DateTime, err)
			continue
		}
		end, err := time.Parse(time.RFC3339, ev.End.DateTime)
		if err != nil {
			c.log.Warn("BusyIntervals: skipping event id=%s with invalid end %q: %v", ev.ID, ev.End.DateTime, err)
			continue
		}

		intervals = append(intervals, domain.BusyInterval{Start: start, End: end})
	}

	return intervals, nil
}

// CreateEvent crea un evento en el calendario y devuelve el evento creado
func (c *Client) CreateEvent(ctx context.Context, event *CreateEventRequest) (*Event, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/events", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &created, nil
}

// DeleteEvent elimina un evento del calendario
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/events/"+url.PathEscape(eventID), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound, http.StatusGone:
		return ErrEventNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
