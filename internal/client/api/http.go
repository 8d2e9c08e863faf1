package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
	"github.com/buperadmin/kwitansi-cli/internal/logging"
	"github.com/google/uuid"
)

// DefaultExportName is used when the export response carries no parsable
// Content-Disposition filename.
const DefaultExportName = "Data_Kwitansi"

const maxErrorBody = 64 << 10

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenStore, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// do performs one round-trip. When authenticated is true the stored bearer
// token is attached (the header is omitted entirely when no token is
// stored) and a 401 response triggers the interception sequence: clear the
// credential, then report ErrSessionExpired. Clearing is idempotent, so
// concurrent 401s are safe without coordination.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, authenticated bool) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if authenticated {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read credential: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}

	if authenticated && resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		if err := c.tokens.Clear(ctx); err != nil {
			c.log.Error(ctx, "clearing credential after 401", "error", err)
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrSessionExpired)
	}

	return resp, nil
}

// checkStatus consumes resp on failure statuses and maps them to the error
// taxonomy. 401 never reaches here on authenticated calls.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
	return &StatusError{Status: resp.StatusCode, Body: body}
}

// doJSON sends an optional JSON body and decodes a JSON response into out
// (skipped when out is nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, in, out any, authenticated bool) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, query, body, contentType, authenticated)
	if err != nil {
		return err
	}
	if err := checkStatus(resp); err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	Token      string             `json:"token"`
	CheckLogin models.SessionUser `json:"checkLogin"`
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (string, *models.SessionUser, error) {
	payload, err := json.Marshal(loginRequest{Identifier: identifier, Password: password})
	if err != nil {
		return "", nil, fmt.Errorf("encode request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, bytes.NewReader(payload), "application/json", false)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return "", nil, &AuthError{Reason: loginFailureReason(resp.Body)}
	}
	if err := checkStatus(resp); err != nil {
		return "", nil, err
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", nil, fmt.Errorf("decode login response: %w", err)
	}
	return lr.Token, &lr.CheckLogin, nil
}

// loginFailureReason pulls the human-readable message out of a login
// rejection body, falling back to a generic reason when the body is not the
// expected JSON shape.
func loginFailureReason(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "invalid credentials"
}

func (c *HTTPClient) KeepLogin(ctx context.Context) (*models.SessionUser, error) {
	var user models.SessionUser
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/keeplogin", nil, nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) RegisterAdmin(ctx context.Context, admin models.NewAdmin) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/register", nil, admin, nil, true)
}

func listQueryValues(q models.ListQuery) url.Values {
	values := url.Values{}
	values.Set("search", q.Search)
	values.Set("sort", q.Sort)
	values.Set("order", q.Order)
	if q.StartDate != "" {
		values.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("endDate", q.EndDate)
	}
	return values
}

func (c *HTTPClient) ListKwitansi(ctx context.Context, q models.ListQuery) (*models.KwitansiPage, error) {
	values := listQueryValues(q)
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))

	var page models.KwitansiPage
	if err := c.doJSON(ctx, http.MethodGet, "/api/kwitansi", values, nil, &page, true); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) ExportKwitansi(ctx context.Context, q models.ListQuery, exportType string) (string, []byte, error) {
	values := listQueryValues(q)
	values.Set("type", exportType)

	resp, err := c.do(ctx, http.MethodGet, "/api/kwitansi/export", values, nil, "", true)
	if err != nil {
		return "", nil, err
	}
	if err := checkStatus(resp); err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("read export body: %w", err)
	}

	return attachmentFilename(resp.Header.Get("Content-Disposition")), data, nil
}

// attachmentFilename derives the download name from a Content-Disposition
// header. A missing or malformed header yields DefaultExportName.
func attachmentFilename(disposition string) string {
	if disposition == "" {
		return DefaultExportName
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return DefaultExportName
	}
	if name := params["filename"]; name != "" {
		return name
	}
	return DefaultExportName
}

func (c *HTTPClient) SubmitKwitansi(ctx context.Context, draft models.KwitansiDraft) error {
	return c.doJSON(ctx, http.MethodPost, "/api/kwitansi/cetak", nil, draft, nil, true)
}

type mahasiswaListResponse struct {
	Data []models.Mahasiswa `json:"data"`
}

func (c *HTTPClient) FindMahasiswa(ctx context.Context, nim string) (*models.Mahasiswa, error) {
	values := url.Values{}
	values.Set("nim", nim)

	var result mahasiswaListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/mahasiswa", values, nil, &result, true); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, nil
	}
	return &result.Data[0], nil
}

func (c *HTTPClient) AddMahasiswa(ctx context.Context, m models.Mahasiswa) error {
	return c.doJSON(ctx, http.MethodPost, "/api/mahasiswa/add", nil, m, nil, true)
}

func (c *HTTPClient) UploadMahasiswaExcel(ctx context.Context, filename string, file io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/mahasiswa/upload-excel", nil, &buf, w.FormDataContentType(), true)
	if err != nil {
		return err
	}
	if err := checkStatus(resp); err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
