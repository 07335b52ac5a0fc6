// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The vendor-shipping Authors

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/utils"
	"github.com/marketcore/vendor-shipping/models"
)

type vendorClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewVendorClient constructs an HTTP/REST implementation of [VendorClient].
// It normalises and validates baseURL and configures the underlying HTTP
// client with the resolved base URL and request timeout.
//
// Returns an error if baseURL is empty or cannot be parsed as a valid URL.
func NewVendorClient(baseURL string, timeout time.Duration, logger *logger.Logger) (VendorClient, error) {
	client := utils.NewHTTPClient()

	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid vendor api address: %w", err)
	}

	client.
		SetBaseURL(normalized).
		SetTimeout(timeout)

	return &vendorClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [VendorClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (c *vendorClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = strings.TrimSpace(token)
}

// Token implements [VendorClient].
func (c *vendorClient) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// IssueToken implements [VendorClient]. It POSTs the seller credentials to
// POST /vendor/auth/token. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (c *vendorClient) IssueToken(ctx context.Context, credentials models.TokenRequest) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/vendor/auth/token")
	if err != nil {
		return "", fmt.Errorf("issue token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("issue token parse bearer token: %w", err)
	}

	c.SetToken(token)
	return token, nil
}

// GetCurrentSeller implements [VendorClient].
func (c *vendorClient) GetCurrentSeller(ctx context.Context) (models.Seller, error) {
	var envelope models.SellerResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.Token()).
		SetResult(&envelope).
		Get("/vendor/sellers/me")
	if err != nil {
		return models.Seller{}, fmt.Errorf("get current seller request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Seller{}, err
	}

	return envelope.Seller, nil
}

// CreateShippingOption implements [VendorClient].
func (c *vendorClient) CreateShippingOption(ctx context.Context, serviceZoneID string, req models.CreateShippingOptionRequest, fields []string) (map[string]any, error) {
	var envelope models.ShippingOptionResponse

	request := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.Token()).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", serviceZoneID).
		SetBody(req).
		SetResult(&envelope)
	setFieldsParam(request, fields)

	resp, err := request.Post("/vendor/service-zones/{id}/shipping-options")
	if err != nil {
		return nil, fmt.Errorf("create shipping option request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return envelope.ShippingOption, nil
}

// GetShippingOption implements [VendorClient].
func (c *vendorClient) GetShippingOption(ctx context.Context, id string, fields []string) (map[string]any, error) {
	var envelope models.ShippingOptionResponse

	request := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.Token()).
		SetPathParam("id", id).
		SetResult(&envelope)
	setFieldsParam(request, fields)

	resp, err := request.Get("/vendor/shipping-options/{id}")
	if err != nil {
		return nil, fmt.Errorf("get shipping option request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return envelope.ShippingOption, nil
}

// ListShippingOptions implements [VendorClient].
func (c *vendorClient) ListShippingOptions(ctx context.Context, serviceZoneID string, params ListShippingOptionsParams) (models.ShippingOptionListResponse, error) {
	var envelope models.ShippingOptionListResponse

	request := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.Token()).
		SetPathParam("id", serviceZoneID).
		SetResult(&envelope)

	if params.Name != "" {
		request.SetQueryParam("name", params.Name)
	}
	if params.Query != "" {
		request.SetQueryParam("q", params.Query)
	}
	if params.PriceType != "" {
		request.SetQueryParam("price_type", params.PriceType)
	}
	if params.Limit > 0 {
		request.SetQueryParam("limit", strconv.FormatUint(params.Limit, 10))
	}
	if params.Offset > 0 {
		request.SetQueryParam("offset", strconv.FormatUint(params.Offset, 10))
	}

	resp, err := request.Get("/vendor/service-zones/{id}/shipping-options")
	if err != nil {
		return models.ShippingOptionListResponse{}, fmt.Errorf("list shipping options request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShippingOptionListResponse{}, err
	}

	return envelope, nil
}

// UpdateShippingOption implements [VendorClient].
func (c *vendorClient) UpdateShippingOption(ctx context.Context, id string, req models.UpdateShippingOptionRequest, fields []string) (map[string]any, error) {
	var envelope models.ShippingOptionResponse

	request := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.Token()).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(req).
		SetResult(&envelope)
	setFieldsParam(request, fields)

	resp, err := request.Post("/vendor/shipping-options/{id}")
	if err != nil {
		return nil, fmt.Errorf("update shipping option request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return envelope.ShippingOption, nil
}

// DeleteShippingOption implements [VendorClient].
func (c *vendorClient) DeleteShippingOption(ctx context.Context, id string) (models.DeleteResponse, error) {
	var envelope models.DeleteResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.Token()).
		SetPathParam("id", id).
		SetResult(&envelope).
		Delete("/vendor/shipping-options/{id}")
	if err != nil {
		return models.DeleteResponse{}, fmt.Errorf("delete shipping option request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteResponse{}, err
	}

	return envelope, nil
}

// GetServerVersion implements [VendorClient].
func (c *vendorClient) GetServerVersion(ctx context.Context) (string, error) {
	var envelope models.VersionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return envelope.Version, nil
}

func setFieldsParam(request *resty.Request, fields []string) {
	if len(fields) > 0 {
		request.SetQueryParam("fields", strings.Join(fields, ","))
	}
}
