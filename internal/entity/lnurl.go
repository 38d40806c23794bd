package entity

// LNURL-pay wire shapes (LUD-06). Field names and casing are fixed by the
// protocol; wallets verify the metadata string against the BOLT11
// description hash byte for byte.

const PayRequestTag = "payRequest"

// PayRequestParams is the first LNURL-pay response: the sendable range and
// the canonical metadata the wallet commits to.
type PayRequestParams struct {
	Tag            string     `json:"tag"`
	MinSendable    LightMoney `json:"minSendable"`
	MaxSendable    LightMoney `json:"maxSendable"`
	CommentAllowed int        `json:"commentAllowed"`
	Metadata       string     `json:"metadata"`
}

// PayCallback is the second LNURL-pay response, carrying the BOLT11 payment
// request. Routes is always empty: no route hints are proposed.
type PayCallback struct {
	PR         string   `json:"pr"`
	Routes     []string `json:"routes"`
	Disposable bool     `json:"disposable"`
}

func NewPayCallback(bolt11 string) PayCallback {
	return PayCallback{
		PR:         bolt11,
		Routes:     []string{},
		Disposable: true,
	}
}

// StatusResponse is the LNURL protocol error form.
type StatusResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func NewErrorResponse(reason string) StatusResponse {
	return StatusResponse{Status: "ERROR", Reason: reason}
}

// PayResolution is the outcome of resolving a pay request: exactly one of
// Callback or Params is set.
type PayResolution struct {
	Callback *PayCallback
	Params   *PayRequestParams
}
