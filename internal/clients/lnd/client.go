// Package lnd talks to an lnd node over its REST proxy.
package lnd

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/lngate/lnurlpay/internal/entity"
	"github.com/lngate/lnurlpay/internal/lightning"
	"github.com/lngate/lnurlpay/pkg/lnconnect"
	"github.com/lngate/lnurlpay/pkg/transport"
)

const macaroonHeader = "Grpc-Metadata-macaroon"

type Client struct {
	settings lnconnect.Settings
	c        *http.Client
}

func NewClient(settings lnconnect.Settings) (lightning.Client, error) {
	const timeout = 30 * time.Second

	base := http.DefaultTransport
	if settings.AllowInsecure {
		t, ok := http.DefaultTransport.(*http.Transport)
		if !ok {
			return nil, fmt.Errorf("default transport is %T, not *http.Transport", http.DefaultTransport)
		}

		t = t.Clone()
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		base = t
	}

	return &Client{
		settings: settings,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(base),
		},
	}, nil
}

// The lnd REST proxy renders uint64 fields as JSON strings and byte fields
// as base64.
type addInvoiceRequest struct {
	ValueMsat       string `json:"value_msat"`
	DescriptionHash string `json:"description_hash"`
	Expiry          string `json:"expiry"`
}

type addInvoiceResponse struct {
	RHash          string `json:"r_hash"`
	PaymentRequest string `json:"payment_request"`
}

func (c *Client) CreateInvoice(ctx context.Context, params lightning.CreateInvoiceParams) (entity.NodeInvoice, error) {
	hash, err := hex.DecodeString(params.DescriptionHash)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("decode description hash: %w", err)
	}

	expiry := int64(params.Expiry / time.Second)
	if expiry < 1 {
		expiry = 1
	}

	reqData := addInvoiceRequest{
		ValueMsat:       strconv.FormatInt(params.Amount.MilliSatoshis(), 10),
		DescriptionHash: base64.StdEncoding.EncodeToString(hash),
		Expiry:          strconv.FormatInt(expiry, 10),
	}

	b, err := json.Marshal(reqData)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("marshal request: %w", err)
	}

	reqURL := c.settings.Server.JoinPath("/v1/invoices").String()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(b))
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(macaroonHeader, c.settings.MacaroonHex) //nolint:canonicalheader

	resp, err := c.c.Do(req)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.NodeInvoice{}, fmt.Errorf("bad response status %d:\n%s", resp.StatusCode, body)
	}

	var respData addInvoiceResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("unmarshal response: %w", err)
	}

	rHash, err := base64.StdEncoding.DecodeString(respData.RHash)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("decode r_hash: %w", err)
	}

	return entity.NodeInvoice{
		ID:     hex.EncodeToString(rHash),
		BOLT11: respData.PaymentRequest,
	}, nil
}

type lookupInvoiceResponse struct {
	PaymentRequest string `json:"payment_request"`
	Settled        bool   `json:"settled"`
	State          string `json:"state"`
}

func (c *Client) LookupInvoice(ctx context.Context, id string) (entity.NodeInvoice, error) {
	reqURL := c.settings.Server.JoinPath("/v1/invoice/", id).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set(macaroonHeader, c.settings.MacaroonHex) //nolint:canonicalheader

	resp, err := c.c.Do(req)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return entity.NodeInvoice{}, fmt.Errorf("invoice %s: %w", id, entity.ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.NodeInvoice{}, fmt.Errorf("bad response status %d:\n%s", resp.StatusCode, body)
	}

	var respData lookupInvoiceResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return entity.NodeInvoice{}, fmt.Errorf("unmarshal response: %w", err)
	}

	return entity.NodeInvoice{
		ID:      id,
		BOLT11:  respData.PaymentRequest,
		Settled: respData.Settled || respData.State == "SETTLED",
	}, nil
}
