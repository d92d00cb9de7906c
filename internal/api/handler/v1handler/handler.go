// Package v1handler implements the generated v1 API on top of the toolkit.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"utilbox/internal/api/specs/v1specs"
	"utilbox/internal/toolkit"
	"utilbox/pkg/logger"
	"utilbox/pkg/serrors"

	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Toolkit toolkit.Toolkit
}

type Handler struct {
	deps Deps
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// NewServer mounts h behind the generated v1 router with sec as its
// security handler. Requests are served under the /v1 prefix.
func NewServer(h *Handler, sec *SecHandler, opts ...v1specs.ServerOption) (*v1specs.Server, error) {
	opts = append([]v1specs.ServerOption{
		v1specs.WithPathPrefix("/v1"),
		v1specs.WithErrorHandler(h.HandleError),
		v1specs.WithMiddleware(sec.Middleware),
	}, opts...)

	srv, err := v1specs.NewServer(h, sec, opts...)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return srv, nil
}

// NewError maps err to the response sent to the client. Errors without a
// semantic kind are logged and hidden behind a generic 500.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ErrorStatusCode {
	var (
		secErr    *ogenerrors.SecurityError
		decodeErr *ogenerrors.DecodeRequestError
		tooLarge  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &secErr):
		msg := serrors.MessageOf(secErr.Err)
		if msg == "" {
			msg = "missing bearer token"
		}
		err = serrors.Wrap(serrors.ErrUnauthorized, secErr.Err, "%s", msg)
	case errors.As(err, &tooLarge):
		err = serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
	case errors.As(err, &decodeErr):
		err = serrors.Wrap(serrors.ErrBadRequest, decodeErr.Err, "invalid request body")
	}

	kind := serrors.KindOf(err)
	res := &v1specs.ErrorStatusCode{
		Response: v1specs.Error{Code: kind.Error(), Message: serrors.MessageOf(err)},
	}
	switch {
	case errors.Is(kind, serrors.ErrInvalidInput):
		res.StatusCode = http.StatusBadRequest
		if res.Response.Message == "" {
			res.Response.Message = "invalid input"
		}
	case errors.Is(kind, serrors.ErrBadRequest):
		res.StatusCode = http.StatusBadRequest
		if res.Response.Message == "" {
			res.Response.Message = "bad request"
		}
	case errors.Is(kind, serrors.ErrUnauthorized):
		res.StatusCode = http.StatusUnauthorized
		if res.Response.Message == "" {
			res.Response.Message = "unauthorized"
		}
	case errors.Is(kind, serrors.ErrTimeout):
		res.StatusCode = http.StatusServiceUnavailable
		if res.Response.Message == "" {
			res.Response.Message = "request timed out"
		}
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return &v1specs.ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: v1specs.Error{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	logger.Debug(ctx, "request rejected",
		zap.String("code", res.Response.Code),
		zap.Error(err))

	return res
}

// HandleError renders errors raised by the generated router before a
// handler runs, such as undecodable bodies, in the same envelope as NewError.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(ctx, err)

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	res.Response.Encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(res.StatusCode)
	_, _ = w.Write(e.Bytes())
}
