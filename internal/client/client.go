// Package client is a typed caller of the report tracker RPC endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AloysioLvy/ReportTracker/backend/internal/dashboard"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
)

// DefaultEndpoint is used when neither --endpoint nor REPORTCTL_ENDPOINT is set.
const DefaultEndpoint = "http://localhost:2022/api/v1/rpc"

// Error is a failed call as reported by the server.
type Error struct {
	Status  int                 `json:"-"`
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []models.FieldError `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(parts, "; "))
}

type envelope struct {
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

type request struct {
	Method string      `json:"method"`
	Params interface{} `json:"params,omitempty"`
}

// Client calls one RPC endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// New returns a Client for endpoint, the full URL of POST /api/v1/rpc.
func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Call invokes method with params and decodes the result into out. A null
// result leaves out untouched and returns found == false.
func (c *Client) Call(ctx context.Context, method string, params, out interface{}) (found bool, err error) {
	body, err := json.Marshal(request{Method: method, Params: params})
	if err != nil {
		return false, fmt.Errorf("encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("call %s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("read %s response: %w", method, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false, fmt.Errorf("decode %s response (HTTP %d): %w", method, resp.StatusCode, err)
	}
	if env.Error != nil {
		env.Error.Status = resp.StatusCode
		return false, env.Error
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("call %s: unexpected HTTP %d", method, resp.StatusCode)
	}

	if len(env.Result) == 0 || string(env.Result) == "null" {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return false, fmt.Errorf("decode %s result: %w", method, err)
	}
	return true, nil
}

func (c *Client) Healthcheck(ctx context.Context) (string, error) {
	var h struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if _, err := c.Call(ctx, "healthcheck", nil, &h); err != nil {
		return "", err
	}
	return h.Status, nil
}

func (c *Client) CreateReport(ctx context.Context, in *models.CreateReportInput) (*models.Report, error) {
	var r models.Report
	if _, err := c.Call(ctx, "createReport", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) GetReports(ctx context.Context, filter *models.GetReportsInput) ([]models.Report, error) {
	reports := []models.Report{}
	if _, err := c.Call(ctx, "getReports", filter, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReportByID returns nil, nil when the report does not exist.
func (c *Client) GetReportByID(ctx context.Context, id uint) (*models.ReportWithFollowUps, error) {
	var r models.ReportWithFollowUps
	found, err := c.Call(ctx, "getReportById", models.IDInput{ID: id}, &r)
	if err != nil || !found {
		return nil, err
	}
	return &r, nil
}

// UpdateReport returns nil, nil when the report does not exist.
func (c *Client) UpdateReport(ctx context.Context, in *models.UpdateReportInput) (*models.Report, error) {
	var r models.Report
	found, err := c.Call(ctx, "updateReport", in, &r)
	if err != nil || !found {
		return nil, err
	}
	return &r, nil
}

func (c *Client) DeleteReport(ctx context.Context, id uint) (bool, error) {
	var ok bool
	_, err := c.Call(ctx, "deleteReport", models.IDInput{ID: id}, &ok)
	return ok, err
}

func (c *Client) CreateFollowUpAction(ctx context.Context, in *models.CreateFollowUpActionInput) (*models.FollowUpAction, error) {
	var a models.FollowUpAction
	if _, err := c.Call(ctx, "createFollowUpAction", in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) GetFollowUpActions(ctx context.Context) ([]models.FollowUpAction, error) {
	return c.listActions(ctx, "getFollowUpActions", nil)
}

func (c *Client) GetFollowUpActionsByReportID(ctx context.Context, reportID uint) ([]models.FollowUpAction, error) {
	return c.listActions(ctx, "getFollowUpActionsByReportId", models.ReportIDInput{ReportID: reportID})
}

func (c *Client) GetPendingFollowUpActions(ctx context.Context) ([]models.FollowUpAction, error) {
	return c.listActions(ctx, "getPendingFollowUpActions", nil)
}

// UpdateFollowUpAction returns nil, nil when the action does not exist.
func (c *Client) UpdateFollowUpAction(ctx context.Context, in *models.UpdateFollowUpActionInput) (*models.FollowUpAction, error) {
	var a models.FollowUpAction
	found, err := c.Call(ctx, "updateFollowUpAction", in, &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteFollowUpAction(ctx context.Context, id uint) (bool, error) {
	var ok bool
	_, err := c.Call(ctx, "deleteFollowUpAction", models.IDInput{ID: id}, &ok)
	return ok, err
}

func (c *Client) GetDashboardStats(ctx context.Context) (*dashboard.Stats, error) {
	var s dashboard.Stats
	if _, err := c.Call(ctx, "getDashboardStats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) listActions(ctx context.Context, method string, params interface{}) ([]models.FollowUpAction, error) {
	actions := []models.FollowUpAction{}
	if _, err := c.Call(ctx, method, params, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}
