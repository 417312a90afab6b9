package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"lahella/internal/config"
	"lahella/internal/logger"
	"lahella/models"
)

// The portal fronts its API with a browser check, so requests carry a
// desktop browser identity and the Referer of the listing editor.
const (
	userAgent  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	apiReferer = "/activities?_key=new&type=hobby"

	imageCacheControl = "public, max-age=3600, s-maxage=3600"
)

type httpPlatform struct {
	client  *resty.Client
	baseURL string

	tokens models.TokenSet

	logger *logger.Logger
}

// NewHTTPPlatform constructs the HTTP/REST implementation of [PlatformAPI].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying client with the resolved base URL, the request timeout and
// the standing browser-identity headers.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPPlatform(cfg *config.Settings, logger *logger.Logger) (PlatformAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid portal address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Origin", baseURL)

	return &httpPlatform{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetSession implements [PlatformAPI]. It stores the cookie set attached to
// all subsequent requests.
func (h *httpPlatform) SetSession(tokens models.TokenSet) {
	h.tokens = tokens
}

// Session implements [PlatformAPI].
func (h *httpPlatform) Session() models.TokenSet {
	return h.tokens
}

// sessionRequest starts a request carrying the session cookies and the
// listing-editor Referer the API expects.
func (h *httpPlatform) sessionRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetCookies(h.tokens.Cookies()).
		SetHeader("Referer", h.baseURL+apiReferer)
}

// RefreshSession implements [PlatformAPI]. It POSTs the refresh grant to
// /api/v1/auth/token with the current cookies attached. The portal signals
// success with HTTP 200 plus {"status":"Success"} and reissues part of the
// cookie set via Set-Cookie headers; those reissued cookies are returned.
func (h *httpPlatform) RefreshSession(ctx context.Context) (models.TokenSet, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetCookies(h.tokens.Cookies()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Referer", h.baseURL+"/login").
		SetBody(map[string]string{"grant_type": "refresh_token"}).
		Post("/api/v1/auth/token")
	if err != nil {
		return models.TokenSet{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenSet{}, err
	}

	var result struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil || result.Status != "Success" {
		return models.TokenSet{}, fmt.Errorf("%w: unexpected body %q", ErrRefreshRejected, strings.TrimSpace(string(resp.Body())))
	}

	reissued := models.NewTokenSet(resp.Cookies())
	if reissued.Empty() {
		return models.TokenSet{}, fmt.Errorf("%w: no session cookies reissued", ErrRefreshRejected)
	}

	h.logger.Debug().Msg("portal reissued session cookies")
	return reissued, nil
}

// CreateActivity implements [PlatformAPI]. It POSTs the listing to
// /v1/activities and returns the stored copy. The portal answers a plain
// 200 (not 201) on success.
func (h *httpPlatform) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	var created models.Activity
	resp, err := h.sessionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(activity).
		SetResult(&created).
		Post("/v1/activities")
	if err != nil {
		return models.Activity{}, fmt.Errorf("create activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Activity{}, err
	}

	if created.Key == "" {
		return models.Activity{}, fmt.Errorf("%w: created listing has no key", ErrMalformedResponse)
	}
	return created, nil
}

// UpdateActivity implements [PlatformAPI]. It PUTs the listing body to
// /v1/activities/{key}; the key addresses the URL and is never part of the
// body.
func (h *httpPlatform) UpdateActivity(ctx context.Context, key string, activity models.Activity) (models.Activity, error) {
	activity.Key = ""

	var updated models.Activity
	resp, err := h.sessionRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(activity).
		SetResult(&updated).
		Put("/v1/activities/" + url.PathEscape(key))
	if err != nil {
		return models.Activity{}, fmt.Errorf("update activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Activity{}, err
	}

	return updated, nil
}

// Activity implements [PlatformAPI]. It GETs one listing with file links
// resolved, so the photo key of the listing image is available.
func (h *httpPlatform) Activity(ctx context.Context, key string) (models.Activity, error) {
	var activity models.Activity
	resp, err := h.sessionRequest(ctx).
		SetQueryParam("links[files]", "true").
		SetResult(&activity).
		Get("/v1/activities/" + url.PathEscape(key))
	if err != nil {
		return models.Activity{}, fmt.Errorf("get activity request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Activity{}, err
	}

	return activity, nil
}

// ListActivities implements [PlatformAPI]. It GETs one page of the group's
// listings; pagination is driven by the caller via query.Skip and the
// returned HasMore flag.
func (h *httpPlatform) ListActivities(ctx context.Context, query ActivityQuery) (models.ActivityList, error) {
	var list models.ActivityList
	resp, err := h.sessionRequest(ctx).
		SetQueryParams(map[string]string{
			"groups[0]":     query.Group,
			"links[groups]": "true",
			"total":         "true",
			"limit":         strconv.Itoa(query.Limit),
			"skip":          strconv.Itoa(query.Skip),
			"text":          query.Text,
		}).
		SetResult(&list).
		Get("/v1/activities")
	if err != nil {
		return models.ActivityList{}, fmt.Errorf("list activities request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActivityList{}, err
	}

	return list, nil
}

// UploadImage implements [PlatformAPI]. It uploads the file as multipart
// form data to /v1/files for the given group and returns the file key the
// portal assigned.
func (h *httpPlatform) UploadImage(ctx context.Context, group, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	var uploaded struct {
		Key string `json:"_key"`
	}
	resp, err := h.sessionRequest(ctx).
		SetQueryParams(map[string]string{
			"group":        group,
			"cacheControl": imageCacheControl,
		}).
		SetMultipartField("file", filepath.Base(path), "image/jpeg", file).
		SetResult(&uploaded).
		Post("/v1/files")
	if err != nil {
		return "", fmt.Errorf("upload image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if uploaded.Key == "" {
		return "", fmt.Errorf("%w: upload response has no file key", ErrMalformedResponse)
	}

	h.logger.Debug().Str("file", uploaded.Key).Msg("image uploaded")
	return uploaded.Key, nil
}
