// SPDX-License-Identifier: Apache-2.0

// Package client is the programmatic peer of the transaction gateway: it
// drives the begin / prepare / commit / rollback / forget /
// before-completion operations of a remote gateway over HTTP and maps wire
// error records back to typed errors.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/txgate/txgate/internal/codec"
	"github.com/txgate/txgate/models"
)

// Operation paths of the remote gateway.
const (
	pathUTBegin            = "/txn/v1/ut/begin"
	pathUTRollback         = "/txn/v1/ut/rollback"
	pathUTCommit           = "/txn/v1/ut/commit"
	pathXABeforeCompletion = "/txn/v1/xa/before-completion"
	pathXACommit           = "/txn/v1/xa/commit"
	pathXAForget           = "/txn/v1/xa/forget"
	pathXAPrepare          = "/txn/v1/xa/prepare"
	pathXARollback         = "/txn/v1/xa/rollback"
)

// Config holds the connection settings of a gateway client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client drives the transaction lifecycle of a remote gateway. It is
// stateless apart from the underlying connection pool and safe for
// concurrent use.
type Client struct {
	client *resty.Client
	wire   *codec.Codec
}

// New returns a Client for the gateway at cfg.BaseURL.
func New(cfg Config, wire *codec.Codec) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:7600"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli, wire: wire}
}

// Begin starts a new remote transaction with the given timeout and returns
// its Xid. The timeout is truncated to whole seconds on the wire.
func (c *Client) Begin(ctx context.Context, timeout time.Duration) (models.Xid, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader(models.TimeoutHeader, strconv.Itoa(int(timeout/time.Second))).
		Post(pathUTBegin)
	if err != nil {
		return models.Xid{}, fmt.Errorf("begin request: %w", err)
	}
	if err = c.mapHTTPError(resp); err != nil {
		return models.Xid{}, err
	}

	xid, err := c.wire.DecodeXid(resp.Body())
	if err != nil {
		return models.Xid{}, fmt.Errorf("begin response body: %w", err)
	}
	return xid, nil
}

// Rollback rolls back the user transaction named by xid.
func (c *Client) Rollback(ctx context.Context, xid models.Xid) error {
	return c.postXid(ctx, pathUTRollback, xid)
}

// Commit commits the user transaction named by xid. User-transaction
// commits are always full two-phase on the gateway side.
func (c *Client) Commit(ctx context.Context, xid models.Xid) error {
	return c.postXid(ctx, pathUTCommit, xid)
}

// XABeforeCompletion runs the participant's last-chance work before prepare.
func (c *Client) XABeforeCompletion(ctx context.Context, xid models.Xid) error {
	return c.postXid(ctx, pathXABeforeCompletion, xid)
}

// XACommit commits the transaction branch named by xid, optionally skipping
// the prepare phase.
func (c *Client) XACommit(ctx context.Context, xid models.Xid, onePhase bool) error {
	path := pathXACommit
	if onePhase {
		path += "?opc=true"
	}
	return c.postXid(ctx, path, xid)
}

// XAForget discards state retained after a heuristic completion.
func (c *Client) XAForget(ctx context.Context, xid models.Xid) error {
	return c.postXid(ctx, pathXAForget, xid)
}

// XAPrepare records the participant's commit vote.
func (c *Client) XAPrepare(ctx context.Context, xid models.Xid) error {
	return c.postXid(ctx, pathXAPrepare, xid)
}

// XARollback rolls back the transaction branch named by xid.
func (c *Client) XARollback(ctx context.Context, xid models.Xid) error {
	return c.postXid(ctx, pathXARollback, xid)
}

func (c *Client) postXid(ctx context.Context, path string, xid models.Xid) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", models.ContentType{Type: models.XidContentType, Version: models.ProtocolVersion}.String()).
		SetBody(c.wire.EncodeXid(xid)).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	return c.mapHTTPError(resp)
}

// mapHTTPError folds a non-2xx response into the client's sentinel errors.
// Failure bodies under the exception media type are decoded as error
// records; anything else falls back to the plain status code.
func (c *Client) mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusBadRequest {
		return fmt.Errorf("%w: %s %s", ErrBadRequest, resp.Request.Method, resp.Request.URL)
	}

	contentType, ok := models.ParseContentType(resp.Header().Get("Content-Type"))
	if ok && contentType.Type == models.ExceptionContentType && contentType.Version == models.ProtocolVersion {
		record, err := c.wire.DecodeError(resp.Body())
		if err != nil {
			return fmt.Errorf("http %d: undecodable error record: %w", resp.StatusCode(), err)
		}
		return fmt.Errorf("%w: %s", sentinelForKind(record.Kind), record.Message)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
}

func sentinelForKind(kind models.ErrorKind) error {
	switch kind {
	case models.KindSerialization:
		return ErrSerialization
	case models.KindImport:
		return ErrImport
	case models.KindControl:
		return ErrControl
	default:
		return ErrInternal
	}
}
