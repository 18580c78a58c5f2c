package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mishkal/internal/platform/logger"
	pnet "mishkal/internal/platform/net"

	"github.com/google/uuid"
)

// maxHealthBody caps how much of a health reply is drained
const maxHealthBody = 64 << 10

// RemoteOptions configures the upstream client
type RemoteOptions struct {
	// Upstream is the base URL of a Mishkal compatible service, e.g. http://mishkal:8000
	Upstream *url.URL
	// Timeout bounds each upstream call, 0 means none
	Timeout time.Duration
	// Client overrides the http client, mostly for tests
	Client *http.Client
}

// Remote delegates diacritization to an upstream service speaking the same JSON contract
type Remote struct {
	base   *url.URL
	client *http.Client
}

type upstreamRequest struct {
	Text string `json:"text"`
}

type upstreamReply struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
	Error   string `json:"error"`
}

// NewRemote validates opts and builds the engine
func NewRemote(opts RemoteOptions) (*Remote, error) {
	if opts.Upstream == nil || !opts.Upstream.IsAbs() {
		return nil, fmt.Errorf("remote engine: absolute upstream URL required")
	}
	c := opts.Client
	if c == nil {
		c = &http.Client{Timeout: opts.Timeout}
	}
	base := *opts.Upstream
	base.Path = strings.TrimRight(base.Path, "/")
	return &Remote{base: &base, client: c}, nil
}

func (r *Remote) endpoint(p string) string {
	u := *r.base
	u.Path += p
	return u.String()
}

// Diacritize posts text upstream and returns its vocalized text
// upstream failures surface with the upstream's own message
func (r *Remote) Diacritize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(upstreamRequest{Text: text})
	if err != nil {
		return "", AsError(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint("/diacritize"), bytes.NewReader(body))
	if err != nil {
		return "", AsError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID(ctx))

	resp, err := r.client.Do(req)
	if err != nil {
		return "", AsError(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.C(ctx).Warn().Err(cerr).Msg("close upstream body")
		}
	}()

	var rep upstreamReply
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return "", Errorf("upstream returned status %d with a non JSON body", resp.StatusCode)
	}
	if !rep.Success {
		if rep.Error == "" {
			return "", Errorf("upstream returned status %d", resp.StatusCode)
		}
		return "", Errorf("%s", rep.Error)
	}
	return rep.Text, nil
}

// Ping checks GET {upstream}/health answers 200
func (r *Remote) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint("/health"), nil)
	if err != nil {
		return AsError(err)
	}
	req.Header.Set("X-Request-ID", requestID(ctx))
	resp, err := r.client.Do(req)
	if err != nil {
		return AsError(err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxHealthBody))
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Errorf("upstream health returned status %d", resp.StatusCode)
	}
	return nil
}

// Concurrent is true, http.Client is safe for concurrent use
func (r *Remote) Concurrent() bool { return true }

// requestID carries the inbound id upstream, minting one when there is none
func requestID(ctx context.Context) string {
	if id := pnet.RequestID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
