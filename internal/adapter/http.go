// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The MEP Bracket Tool Authors

package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/utils"
	"github.com/mep-tools/bracket-tool/models"
)

const (
	revisionCodeHeader = "X-Revision-Code"
	pdfSHA256Header    = "X-PDF-SHA256"
)

type httpClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPClient returns an [APIClient] for the server at baseURL. A missing
// scheme defaults to http; the path part (e.g. "/api") is kept as prefix.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpClient{
		client: utils.NewHTTPClient(normalized, timeout),
		logger: logger,
	}, nil
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

func (h *httpClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpClient) Token() string {
	return h.token
}

func (h *httpClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.token == "" {
		return nil, ErrNotLoggedIn
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.token), nil
}

func (h *httpClient) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return status, fmt.Errorf("health request: %w", err)
	}

	return status, mapHTTPError(resp)
}

func (h *httpClient) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&registered).
		Post("/auth/register")
	if err != nil {
		return registered, fmt.Errorf("register request: %w", err)
	}

	return registered, mapHTTPError(resp)
}

// Login posts the credentials and keeps the returned access token.
func (h *httpClient) Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&token).
		Post("/auth/login")
	if err != nil {
		return token, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return token, err
	}
	if token.AccessToken == "" {
		return token, fmt.Errorf("login: empty access token in response")
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("func", "httpClient.Login").Msg("access token stored")
	return token, nil
}

func (h *httpClient) ImportLibrary(ctx context.Context, kind models.LibraryKind, fileName string, content io.Reader) (models.ImportResponse, error) {
	var imported models.ImportResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return imported, err
	}

	resp, err := req.
		SetFileReader("file", fileName, content).
		SetResult(&imported).
		SetPathParam("kind", kind.String()).
		Post("/library/import/{kind}")
	if err != nil {
		return imported, fmt.Errorf("import request: %w", err)
	}

	return imported, mapHTTPError(resp)
}

func (h *httpClient) ListLibrary(ctx context.Context, kind models.LibraryKind) ([]map[string]any, error) {
	var items models.ItemsResponse[map[string]any]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetResult(&items).
		SetPathParam("kind", kind.String()).
		Get("/library/{kind}")
	if err != nil {
		return nil, fmt.Errorf("list library request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items.Items, nil
}

func (h *httpClient) CreateProject(ctx context.Context, snapshot models.ProjectSnapshot) (string, error) {
	var created models.CreatedResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	resp, err := req.
		SetBody(snapshot).
		SetResult(&created).
		Post("/projects")
	if err != nil {
		return "", fmt.Errorf("create project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.ID, nil
}

func (h *httpClient) ListProjects(ctx context.Context) ([]models.ProjectListItem, error) {
	var items models.ItemsResponse[models.ProjectListItem]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetResult(&items).
		Get("/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items.Items, nil
}

func (h *httpClient) GetProject(ctx context.Context, projectID string) (models.ProjectSnapshot, error) {
	var snapshot models.ProjectSnapshot

	req, err := h.authedRequest(ctx)
	if err != nil {
		return snapshot, err
	}

	resp, err := req.
		SetResult(&snapshot).
		SetPathParam("projectID", projectID).
		Get("/projects/{projectID}")
	if err != nil {
		return snapshot, fmt.Errorf("get project request: %w", err)
	}

	return snapshot, mapHTTPError(resp)
}

func (h *httpClient) UpdateProject(ctx context.Context, projectID string, snapshot models.ProjectSnapshot) (models.ProjectSnapshot, error) {
	var updated models.ProjectSnapshot

	req, err := h.authedRequest(ctx)
	if err != nil {
		return updated, err
	}

	resp, err := req.
		SetBody(snapshot).
		SetResult(&updated).
		SetPathParam("projectID", projectID).
		Put("/projects/{projectID}")
	if err != nil {
		return updated, fmt.Errorf("update project request: %w", err)
	}

	return updated, mapHTTPError(resp)
}

func (h *httpClient) CheckProject(ctx context.Context, projectID string) (models.CheckResult, error) {
	var result models.CheckResult

	req, err := h.authedRequest(ctx)
	if err != nil {
		return result, err
	}

	resp, err := req.
		SetResult(&result).
		SetPathParam("projectID", projectID).
		Post("/projects/{projectID}/check")
	if err != nil {
		return result, fmt.Errorf("check project request: %w", err)
	}

	return result, mapHTTPError(resp)
}

func (h *httpClient) DownloadPDF(ctx context.Context, projectID string) (models.PDFDownload, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.PDFDownload{}, err
	}

	resp, err := req.
		SetHeader("Accept", "application/pdf").
		SetPathParam("projectID", projectID).
		Get("/projects/{projectID}/pdf")
	if err != nil {
		return models.PDFDownload{}, fmt.Errorf("pdf request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PDFDownload{}, err
	}

	return models.PDFDownload{
		FileName:     attachmentName(resp.Header().Get("Content-Disposition"), projectID),
		RevisionCode: resp.Header().Get(revisionCodeHeader),
		SHA256:       resp.Header().Get(pdfSHA256Header),
		Content:      resp.Body(),
	}, nil
}

func (h *httpClient) ListRevisions(ctx context.Context, projectID string) ([]models.RevisionListItem, error) {
	var items models.ItemsResponse[models.RevisionListItem]

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetResult(&items).
		SetPathParam("projectID", projectID).
		Get("/projects/{projectID}/revisions")
	if err != nil {
		return nil, fmt.Errorf("list revisions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items.Items, nil
}

func attachmentName(disposition, projectID string) string {
	if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return projectID + ".pdf"
}
