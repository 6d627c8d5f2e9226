package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sokonihq/sokoni/internal/adapter/cache"
	"github.com/sokonihq/sokoni/internal/adapter/config"
	"github.com/sokonihq/sokoni/internal/core/port"
	"go.uber.org/zap"
)

const (
	requestTimeout = 15 * time.Second
	tokenCacheKey  = "mpesa:access-token"
	// The provider reports expiry in seconds; renew a minute early.
	tokenExpiryMargin = 60 * time.Second

	timestampLayout = "20060102150405"
	transactionType = "CustomerPayBillOnline"
)

// Client is the Daraja STK-push adapter. It initiates charges and polls
// their status; it never marks an order paid, that happens only through
// the callback handler upstream.
type Client struct {
	cfg        *config.Mpesa
	httpClient *http.Client
	tokens     cache.Cache
	logger     *zap.Logger
	clock      func() time.Time
}

func NewClient(cfg *config.Mpesa, tokens cache.Cache, log *zap.Logger) (*Client, error) {
	if cfg.ShortCode == "" || cfg.Passkey == "" {
		return nil, fmt.Errorf("mpesa shortcode and passkey are required")
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
		tokens:     tokens,
		logger:     log,
		clock:      time.Now,
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// accessToken returns a cached provider token or performs the
// client-credentials exchange.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	if tok, err := c.tokens.Get(ctx, tokenCacheKey); err != nil {
		c.logger.Warn("Token cache read failed", zap.Error(err))
	} else if tok != "" {
		return tok, nil
	}

	url := c.cfg.BaseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request: unexpected status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response contains no access token")
	}

	ttl := time.Hour
	if secs, err := time.ParseDuration(tr.ExpiresIn + "s"); err == nil && secs > tokenExpiryMargin {
		ttl = secs - tokenExpiryMargin
	}
	if err := c.tokens.Set(ctx, tokenCacheKey, tr.AccessToken, ttl); err != nil {
		c.logger.Warn("Token cache write failed", zap.Error(err))
	}

	return tr.AccessToken, nil
}

// password builds the provider request signature:
// base64(shortcode + passkey + timestamp).
func (c *Client) password(timestamp string) string {
	return base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.ShortCode + c.cfg.Passkey + timestamp))
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

func (c *Client) InitiateCharge(ctx context.Context, req port.ChargeRequest) (*port.ChargeResponse, error) {
	timestamp := c.clock().Format(timestampLayout)

	body := stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          c.password(timestamp),
		Timestamp:         timestamp,
		TransactionType:   transactionType,
		Amount:            req.Amount.String(),
		PartyA:            req.Phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       req.Phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.Description,
	}

	var out stkPushResponse
	if err := c.post(ctx, "/mpesa/stkpush/v1/processrequest", body, &out); err != nil {
		return nil, err
	}
	if out.ResponseCode != "0" {
		return nil, fmt.Errorf("stk push rejected: code %s", out.ResponseCode)
	}

	c.logger.Debug("STK push accepted",
		zap.String("order", req.OrderID),
		zap.String("checkoutRequestID", out.CheckoutRequestID))

	return &port.ChargeResponse{
		MerchantRequestID:   out.MerchantRequestID,
		CheckoutRequestID:   out.CheckoutRequestID,
		ResponseCode:        out.ResponseCode,
		ResponseDescription: out.ResponseDescription,
		CustomerMessage:     out.CustomerMessage,
	}, nil
}

type stkQueryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type stkQueryResponse struct {
	CheckoutRequestID string `json:"CheckoutRequestID"`
	ResponseCode      string `json:"ResponseCode"`
	ResultCode        string `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
}

func (c *Client) QueryStatus(ctx context.Context, checkoutRequestID string) (*port.PaymentStatus, error) {
	timestamp := c.clock().Format(timestampLayout)

	body := stkQueryRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          c.password(timestamp),
		Timestamp:         timestamp,
		CheckoutRequestID: checkoutRequestID,
	}

	var out stkQueryResponse
	if err := c.post(ctx, "/mpesa/stkpushquery/v1/query", body, &out); err != nil {
		return nil, err
	}

	return &port.PaymentStatus{
		CheckoutRequestID: out.CheckoutRequestID,
		ResultCode:        out.ResultCode,
		ResultDesc:        out.ResultDesc,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}

	return nil
}
