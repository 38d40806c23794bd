package lightning

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Metadata is the LNURL-pay metadata document together with its digest.
// The digest is what the issued invoice commits to as its description hash,
// so Raw must be byte-identical between the parameter response and the
// callback that issues the invoice.
type Metadata struct {
	Raw  string
	Hash string
}

// PayMetadata builds the canonical metadata array for an invoice. The array
// carries a single text/plain entry holding the invoice identifier.
func PayMetadata(invoiceID string) (Metadata, error) {
	raw, err := json.Marshal([][2]string{{"text/plain", invoiceID}})
	if err != nil {
		return Metadata{}, fmt.Errorf("marshal metadata: %w", err)
	}

	sum := sha256.Sum256(raw)

	return Metadata{
		Raw:  string(raw),
		Hash: hex.EncodeToString(sum[:]),
	}, nil
}
