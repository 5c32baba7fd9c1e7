package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dentist-backend/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("supabase client not configured")

	// ErrConflict: el store rechazó el insert por unique violation (23505).
	// Los repos lo traducen al conflicto de su dominio.
	ErrConflict = errors.New("supabase: unique violation")
)

// Config del cliente Supabase (PostgREST).
// BaseURL y APIKey vienen de env en quien lo instancia.
type Config struct {
	BaseURL string // p.ej. https://<proyecto>.supabase.co
	APIKey  string
	Timeout time.Duration

	// Opcional, para tests: transport inyectado.
	Transport http.RoundTripper
}

// Client es un pass-through fino sobre la API de tablas de PostgREST:
// find y insert, sin retry, sin cache, sin transacciones. Las garantías
// que dé el store se heredan tal cual.
type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return nil, ErrNotConfigured
	}

	var hc *httpclient.Client
	if cfg.Transport != nil {
		hc = httpclient.NewWithTransport(cfg.Timeout, cfg.Transport)
		hc.BaseURL = base
	} else {
		var err error
		hc, err = httpclient.NewWithBaseURL(base, cfg.Timeout)
		if err != nil {
			return nil, err
		}
	}

	return &Client{http: hc, apiKey: key}, nil
}

// Find hace GET /rest/v1/{table} con filtros estilo PostgREST
// ("col" => "eq.valor", "status" => "neq.cancelled").
func (c *Client) Find(ctx context.Context, table string, filters map[string]string, out any) error {
	q := url.Values{}
	q.Set("select", "*")
	for k, v := range filters {
		q.Set(k, v)
	}
	return c.http.DoJSON(ctx, http.MethodGet, "/rest/v1/"+table, q, c.headers(), nil, out)
}

// Insert hace POST /rest/v1/{table} con Prefer: return=representation,
// así PostgREST devuelve las filas insertadas (o un array vacío si no
// insertó nada, que los repos tratan como "no persistido").
func (c *Client) Insert(ctx context.Context, table string, record any, out any) error {
	h := c.headers()
	h["Prefer"] = "return=representation"

	err := c.http.DoJSON(ctx, http.MethodPost, "/rest/v1/"+table, nil, h, record, out)
	if err == nil {
		return nil
	}

	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		// PostgREST responde 409 con code 23505 para unique violations
		if he.StatusCode == http.StatusConflict || strings.Contains(he.Body, `"23505"`) {
			return ErrConflict
		}
	}
	return err
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"apikey":        c.apiKey,
		"Authorization": "Bearer " + c.apiKey,
	}
}
