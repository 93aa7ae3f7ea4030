package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AloysioLvy/ReportTracker/backend/internal/metrics"
	"github.com/AloysioLvy/ReportTracker/backend/internal/models"
	"github.com/AloysioLvy/ReportTracker/backend/internal/services"
	"github.com/AloysioLvy/ReportTracker/backend/internal/validation"
)

// Error codes of the RPC error envelope.
const (
	CodeParseError     = "PARSE_ERROR"
	CodeBadRequest     = "BAD_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// Procedure handles one RPC method. params is the raw "params" member of
// the request and may be empty.
type Procedure func(c echo.Context, params json.RawMessage) (interface{}, error)

// ProcedureSet is implemented by every controller that contributes RPC
// methods.
type ProcedureSet interface {
	Procedures() map[string]Procedure
}

// RPCRequest is the body accepted by the RPC endpoint.
type RPCRequest struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// RPCError is the error member of a failed call.
type RPCError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []models.FieldError `json:"fields,omitempty"`
}

func (e *RPCError) Error() string {
	return e.Code + ": " + e.Message
}

type rpcResult struct {
	Result interface{} `json:"result"`
}

type rpcFailure struct {
	Error *RPCError `json:"error"`
}

// RPCController serves every procedure through a single endpoint.
type RPCController struct {
	procedures map[string]Procedure
	logger     *zap.Logger
}

// NewRPCController merges the procedures of sets into one registry.
// A later set overrides an earlier one on duplicate names.
func NewRPCController(logger *zap.Logger, sets ...ProcedureSet) *RPCController {
	procs := make(map[string]Procedure)
	for _, s := range sets {
		for name, p := range s.Procedures() {
			procs[name] = p
		}
	}
	return &RPCController{procedures: procs, logger: logger}
}

// Register mounts the endpoint at POST /rpc on g.
func (ctrl *RPCController) Register(g *echo.Group) {
	g.POST("/rpc", ctrl.Call)
}

// Methods returns the registered procedure names.
func (ctrl *RPCController) Methods() []string {
	names := make([]string, 0, len(ctrl.procedures))
	for name := range ctrl.procedures {
		names = append(names, name)
	}
	return names
}

// Call decodes the envelope, dispatches to the named procedure and writes
// either {"result": ...} or {"error": {...}}.
func (ctrl *RPCController) Call(c echo.Context) error {
	start := time.Now()

	var req RPCRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return ctrl.fail(c, "invalid", start, &RPCError{Code: CodeParseError, Message: "invalid request body: " + err.Error()})
	}

	proc, ok := ctrl.procedures[req.Method]
	if !ok {
		return ctrl.fail(c, "unknown", start, &RPCError{Code: CodeNotFound, Message: "no procedure named " + req.Method})
	}

	result, err := proc(c, req.Params)
	if err != nil {
		return ctrl.fail(c, req.Method, start, ctrl.toRPCError(req.Method, err))
	}

	metrics.ObserveRPC(req.Method, "OK", time.Since(start))
	return c.JSON(http.StatusOK, rpcResult{Result: result})
}

func (ctrl *RPCController) fail(c echo.Context, method string, start time.Time, rerr *RPCError) error {
	metrics.ObserveRPC(method, rerr.Code, time.Since(start))
	return c.JSON(statusFor(rerr.Code), rpcFailure{Error: rerr})
}

func (ctrl *RPCController) toRPCError(method string, err error) *RPCError {
	var rerr *RPCError
	if errors.As(err, &rerr) {
		return rerr
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return &RPCError{Code: CodeBadRequest, Message: verr.Error(), Fields: verr.Fields}
	}

	if errors.Is(err, services.ErrReportNotFound) {
		ctrl.logger.Warn("rpc call referenced a missing report", zap.String("method", method), zap.Error(err))
		return &RPCError{Code: CodeNotFound, Message: err.Error()}
	}

	ctrl.logger.Error("rpc call failed", zap.String("method", method), zap.Error(err))
	return &RPCError{Code: CodeInternalServer, Message: err.Error()}
}

func statusFor(code string) int {
	switch code {
	case CodeParseError, CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// bindParams decodes params into dst and validates it. Empty or null
// params leave dst at its zero value before validation.
func bindParams(c echo.Context, params json.RawMessage, dst interface{}) error {
	trimmed := bytes.TrimSpace(params)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, dst); err != nil {
			return &RPCError{Code: CodeParseError, Message: "invalid params: " + err.Error()}
		}
	}
	return c.Validate(dst)
}
