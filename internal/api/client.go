package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type ctxKey string

const ctxToken ctxKey = "token"

// ComToken anexa ao contexto o token que vai no cabeçalho Authorization.
func ComToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxToken, token)
}

func TokenDe(ctx context.Context) string {
	t, _ := ctx.Value(ctxToken).(string)
	return t
}

// Client encapsula as chamadas à API remota.
type Client struct {
	baseURL          string
	http             *http.Client
	atrasoMax        time.Duration
	aoSessaoInvalida func(ctx context.Context, err *Error)
	sortear          func(max time.Duration) time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithAtraso injeta uma espera aleatória em [0, max) antes de cada chamada.
func WithAtraso(max time.Duration) Option {
	return func(c *Client) { c.atrasoMax = max }
}

// WithSessaoInvalida registra o callback disparado em respostas 401/403 de sessão.
func WithSessaoInvalida(fn func(ctx context.Context, err *Error)) Option {
	return func(c *Client) { c.aoSessaoInvalida = fn }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		sortear: func(max time.Duration) time.Duration { return rand.N(max) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do executa uma chamada JSON. Parâmetros de query vazios são omitidos.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.esperar(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if q := limparQuery(query); len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar corpo de %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("api: montar requisição %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenDe(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	inicio := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "falha na chamada à api", "method", method, "path", path, "error", err)
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	slog.DebugContext(ctx, "chamada à api", "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(inicio))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodificarErro(resp)
		if SessaoInvalida(apiErr) && c.aoSessaoInvalida != nil {
			c.aoSessaoInvalida(ctx, apiErr)
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("api: decodificar resposta de %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) esperar(ctx context.Context) error {
	if c.atrasoMax <= 0 {
		return nil
	}
	t := time.NewTimer(c.sortear(c.atrasoMax))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func decodificarErro(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, apiErr); err != nil {
			slog.Debug("resposta de erro sem corpo json", "status", resp.StatusCode)
		}
	}
	return apiErr
}

func limparQuery(q url.Values) url.Values {
	if len(q) == 0 {
		return nil
	}
	out := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			if v != "" {
				out.Add(k, v)
			}
		}
	}
	return out
}
