package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"web3-risk-analyzer/models"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Analyzer runs one analysis against the backend
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
}

// Client posts analysis requests to the risk analysis backend. Requests are
// sent once; there is no retry and no de-duplication.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a backend client. A zero timeout waits for the response
// until the connection fails.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:    &fasthttp.Client{Name: "web3-risk-analyzer"},
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		logger:  logger.Named("AnalysisClient"),
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// Analyze implements Analyzer
func (c *Client) Analyze(ctx context.Context, ar models.AnalysisRequest) (models.AnalysisResult, error) {
	requestURL := c.baseURL + ar.Type.Endpoint()

	payload, err := json.Marshal(ar.Body())
	if err != nil {
		return models.AnalysisResult{}, &RequestError{Op: "encode request", Err: err}
	}

	c.logger.Debug("Submitting analysis",
		zap.Stringer("type", ar.Type),
		zap.String("url", requestURL),
		zap.String("address", ar.Address))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if err := c.do(ctx, req, resp); err != nil {
		c.logger.Error("Analysis request failed", zap.String("url", requestURL), zap.Error(err))
		return models.AnalysisResult{}, &RequestError{Op: "POST " + ar.Type.Endpoint(), Err: err}
	}

	status := resp.StatusCode()
	body := resp.Body()

	// The body is parsed before the status is looked at, so an unparseable
	// error page is reported like a transport failure.
	var raw jsoniter.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Error("Analysis response is not JSON",
			zap.String("url", requestURL),
			zap.Int("status", status),
			zap.Error(err))
		return models.AnalysisResult{}, &RequestError{Op: "decode response", Err: err}
	}

	if status < 200 || status > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		c.logger.Warn("Analysis rejected by backend",
			zap.String("url", requestURL),
			zap.Int("status", status),
			zap.String("error", eb.Error))
		return models.AnalysisResult{}, &APIError{StatusCode: status, Message: eb.Error}
	}

	result, err := decodeResult(ar.Type, raw)
	if err != nil {
		c.logger.Error("Failed to decode analysis result", zap.String("url", requestURL), zap.Error(err))
		return models.AnalysisResult{}, &RequestError{Op: "decode response", Err: err}
	}

	c.logger.Info("Analysis complete",
		zap.Stringer("type", ar.Type),
		zap.String("address", ar.Address),
		zap.String("riskLevel", result.RiskLevel()))
	return result, nil
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		return c.http.DoDeadline(req, resp, deadline)
	}
	if c.timeout > 0 {
		return c.http.DoTimeout(req, resp, c.timeout)
	}
	return c.http.Do(req, resp)
}

func decodeResult(t models.AnalysisType, raw []byte) (models.AnalysisResult, error) {
	result := models.AnalysisResult{Kind: t}
	switch t {
	case models.AnalysisWallet:
		result.Wallet = &models.WalletResult{}
		return result, json.Unmarshal(raw, result.Wallet)
	case models.AnalysisCollection:
		result.Collection = &models.CollectionResult{}
		return result, json.Unmarshal(raw, result.Collection)
	case models.AnalysisNFT:
		result.NFT = &models.NFTResult{}
		return result, json.Unmarshal(raw, result.NFT)
	}
	return result, fmt.Errorf("unsupported analysis type %v", t)
}
