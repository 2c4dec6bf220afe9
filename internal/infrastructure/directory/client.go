// Package directory queries the legacy CRM directory for organizations and
// contacts.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	appconfig "freight_crm/internal/config"
	"freight_crm/internal/domain/entities"
	"freight_crm/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

var (
	ErrDisabled       = errors.New("directory disabled")
	ErrUnknownPayload = errors.New("unrecognized directory payload")
)

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

var _ interfaces.IDirectory = (*Client)(nil)

func NewClient(cfg appconfig.Directory, logger *zap.Logger) (*Client, error) {
	if !cfg.Enabled || strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrDisabled
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		http.SetAuthToken(cfg.Token)
	}
	return &Client{http: http, logger: logger}, nil
}

// flexID is an id the directory sends either as a number or as a string.
type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("directory id: %w", err)
	}
	*id = flexID(n.String())
	return nil
}

func (id flexID) String() string { return string(id) }

type organizationDTO struct {
	ID      flexID `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type contactDTO struct {
	ID             flexID `json:"id"`
	OrganizationID flexID `json:"organization_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
}

func (c *Client) SearchOrganizations(ctx context.Context, query string) ([]entities.Organization, error) {
	body, err := c.get(ctx, "/organizations", query)
	if err != nil {
		return nil, err
	}
	rows, err := normalize[organizationDTO](body, "organizations")
	if err != nil {
		c.logger.Warn("[directory][client] organizations payload", zap.Error(err))
		return nil, err
	}

	out := make([]entities.Organization, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.Organization{
			ID:      r.ID.String(),
			Name:    r.Name,
			TaxID:   r.TaxID,
			Email:   r.Email,
			Phone:   r.Phone,
			Address: r.Address,
		})
	}
	return out, nil
}

func (c *Client) SearchContacts(ctx context.Context, query string) ([]entities.Contact, error) {
	body, err := c.get(ctx, "/contacts", query)
	if err != nil {
		return nil, err
	}
	rows, err := normalize[contactDTO](body, "contacts")
	if err != nil {
		c.logger.Warn("[directory][client] contacts payload", zap.Error(err))
		return nil, err
	}

	out := make([]entities.Contact, 0, len(rows))
	for _, r := range rows {
		out = append(out, entities.Contact{
			ID:             r.ID.String(),
			OrganizationID: r.OrganizationID.String(),
			Name:           r.Name,
			Email:          r.Email,
			Phone:          r.Phone,
			Position:       r.Position,
		})
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path, query string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("search", query).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("directory %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("directory %s: status %d", path, resp.StatusCode())
	}
	return resp.Body(), nil
}

// normalize accepts every shape the directory has answered with over time:
// a bare array, {"data":[...]}, {"items":[...]} and
// {"results":{"<kind>":[...]}}.
func normalize[T any](body []byte, kind string) ([]T, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return []T{}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var rows []T
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}

	var env struct {
		Data    json.RawMessage            `json:"data"`
		Items   json.RawMessage            `json:"items"`
		Results map[string]json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	switch {
	case len(env.Data) > 0:
		raw = env.Data
	case len(env.Items) > 0:
		raw = env.Items
	case len(env.Results[kind]) > 0:
		raw = env.Results[kind]
	default:
		return nil, ErrUnknownPayload
	}

	rows := []T{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
