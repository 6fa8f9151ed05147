// Package supabase implementa el backend remoto sobre la API de tablas
// PostgREST de Supabase. Usa net/http de la librería estándar; no requiere el
// SDK oficial.
//
// Cada petición lleva la credencial en los headers apikey y Authorization.
// La credencial restringida (anon) cubre las operaciones del propietario de la
// fila; la elevada (service-role) es obligatoria para las operaciones de
// administración: crear usuarios, listar entre usuarios y actualizar registros
// arbitrarios. Las escrituras piden Prefer: return=representation y una
// respuesta sin filas significa que el backend no persistió nada: se reporta
// como operación fallida (domain.ErrNothingPersisted), sin reintentos y sin
// tumbar el proceso.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/edi-platform/loan-intake-api/internal/domain"
	"github.com/edi-platform/loan-intake-api/pkg/config"
)

const restPath = "/rest/v1/"

// Client cliente HTTP del API PostgREST con las dos credenciales.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
}

// NewClient construye el cliente a partir de la configuración remota.
func NewClient(cfg config.SupabaseConfig) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 15
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceRoleKey,
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Elevated indica si la credencial service-role está configurada.
func (c *Client) Elevated() bool { return c.serviceKey != "" }

// statusError respuesta no-2xx del API, preservada para el mapeo en los repos.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("supabase: estado %d: %s", e.status, e.body)
}

// Unwrap clasifica toda respuesta no-2xx dentro de la taxonomía de dominio:
// errors.Is(err, domain.ErrPersistence) es verdadero para cualquier fallo remoto.
func (e *statusError) Unwrap() error { return domain.ErrPersistence }

// do ejecuta una petición contra /rest/v1/<table> y devuelve el cuerpo crudo.
// Con elevated=true exige la credencial service-role; si no está configurada
// la operación falla con domain.ErrElevatedKeyRequired sin tocar la red.
func (c *Client) do(ctx context.Context, method, table string, query url.Values, body any, elevated bool) ([]byte, error) {
	key := c.anonKey
	if elevated {
		if c.serviceKey == "" {
			return nil, domain.ErrElevatedKeyRequired
		}
		key = c.serviceKey
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.baseURL + restPath + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: %s %s: %w", method, table, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("supabase: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

// decodeRows decodifica la representación de filas devuelta por PostgREST.
func decodeRows[T any](raw []byte) ([]*T, error) {
	var rows []*T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("supabase: decodificar filas: %w", err)
	}
	return rows, nil
}
