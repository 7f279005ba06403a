package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

// BodyHashHeader carries the hex HMAC-SHA256 of a request body.
const BodyHashHeader = "X-Body-Hash"

// defaultRequestTimeout is used when the configuration leaves the timeout unset.
const defaultRequestTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for body
// integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, timeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.CredentialsRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.CredentialsRequest) (models.User, string, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, "", fmt.Errorf("%w: %w", ErrNoToken, err)
	}

	h.SetToken(token)
	return user, token, nil
}

// Logout implements [ServerAdapter]. The stored token is dropped even when
// the server call fails.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	h.SetToken("")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// CurrentUser implements [ServerAdapter] via GET /api/auth/session.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.getJSON(ctx, "/api/auth/session", &user); err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	return user, nil
}

// UploadAttachment implements [ServerAdapter] via PUT /api/storage/{bucket}/{name}.
func (h *httpServerAdapter) UploadAttachment(ctx context.Context, bucket models.Bucket, name string, body io.Reader) (models.AttachmentInfo, error) {
	var info models.AttachmentInfo

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(body).
		SetResult(&info).
		Put(storagePath(bucket, name))
	if err != nil {
		return models.AttachmentInfo{}, fmt.Errorf("upload attachment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AttachmentInfo{}, err
	}

	return info, nil
}

// AttachmentInfo implements [ServerAdapter]. It sends
// HEAD /api/storage/{bucket}/{name} and reads the size from Content-Length.
func (h *httpServerAdapter) AttachmentInfo(ctx context.Context, bucket models.Bucket, name string) (models.AttachmentInfo, error) {
	resp, err := h.authedRequest(ctx).Head(storagePath(bucket, name))
	if err != nil {
		return models.AttachmentInfo{}, fmt.Errorf("attachment info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AttachmentInfo{}, err
	}

	size, err := strconv.ParseInt(resp.Header().Get("Content-Length"), 10, 64)
	if err != nil {
		if resp.RawResponse == nil || resp.RawResponse.ContentLength < 0 {
			return models.AttachmentInfo{}, fmt.Errorf("attachment info content length: %w", err)
		}
		size = resp.RawResponse.ContentLength
	}

	info := models.AttachmentInfo{Bucket: bucket, Name: name, SizeBytes: size}
	if lm, lmErr := http.ParseTime(resp.Header().Get("Last-Modified")); lmErr == nil {
		info.UpdatedAt = lm
	}

	return info, nil
}

// DeleteAttachment implements [ServerAdapter] via DELETE /api/storage/{bucket}/{name}.
func (h *httpServerAdapter) DeleteAttachment(ctx context.Context, bucket models.Bucket, name string) error {
	resp, err := h.authedRequest(ctx).Delete(storagePath(bucket, name))
	if err != nil {
		return fmt.Errorf("delete attachment request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var v models.VersionResponse
	if err := h.getJSON(ctx, "/api/version", &v); err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	return v, nil
}

// authedRequest prepares a request with the bearer token from ctx, or the
// stored one.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	token, ok := tokenFromContext(ctx)
	if !ok {
		token = h.Token()
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// getJSON performs an authenticated GET and decodes the JSON reply into out.
func (h *httpServerAdapter) getJSON(ctx context.Context, path string, out any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// hashedRequest marshals body and signs it with [BodyHashHeader] when a hash
// key is configured.
func (h *httpServerAdapter) hashedRequest(ctx context.Context, body any) (*resty.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req := h.authedRequest(ctx).SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(BodyHashHeader, hex.EncodeToString(utils.Hash(payload)))
	}
	return req, nil
}

func storagePath(bucket models.Bucket, name string) string {
	return "/api/storage/" + url.PathEscape(string(bucket)) + "/" + url.PathEscape(name)
}
