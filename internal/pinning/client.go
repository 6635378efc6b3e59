// Package pinning pins capsule content and metadata to IPFS through the
// Pinata HTTP API.
package pinning

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
)

const defaultBaseURL = "https://api.pinata.cloud"

var (
	cidV0Re = regexp.MustCompile(`^Qm[1-9A-HJ-NP-Za-km-z]{44}$`)
	cidV1Re = regexp.MustCompile(`^bafy[a-z2-7]{55}$`)
)

// PinResult is the Pinata pin response
type PinResult struct {
	IpfsHash    string `json:"IpfsHash"`
	PinSize     int64  `json:"PinSize"`
	Timestamp   string `json:"Timestamp"`
	IsDuplicate bool   `json:"isDuplicate,omitempty"`
}

// Attribute is one NFT metadata attribute
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// CapsuleMetadata is the NFT metadata document pinned alongside the content
type CapsuleMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Location    string      `json:"location,omitempty"`
	CreatedAt   string      `json:"createdAt"`
	ContentHash string      `json:"contentHash"`
	IPFSHash    string      `json:"ipfsHash,omitempty"`
	IsPublic    bool        `json:"isPublic"`
	TokenID     int64       `json:"tokenId"`
	Attributes  []Attribute `json:"attributes"`
}

// NewCapsuleMetadata builds the metadata document for a capsule token
func NewCapsuleMetadata(tokenID int64, description, location, contentHash, ipfsHash string, isPublic bool, createdAt time.Time) CapsuleMetadata {
	visibility := "Private"
	if isPublic {
		visibility = "Public"
	}
	locationValue := location
	if locationValue == "" {
		locationValue = "Unknown"
	}

	return CapsuleMetadata{
		Name:        fmt.Sprintf("ProofCapsule #%d", tokenID),
		Description: description,
		Location:    location,
		CreatedAt:   createdAt.UTC().Format(time.RFC3339),
		ContentHash: contentHash,
		IPFSHash:    ipfsHash,
		IsPublic:    isPublic,
		TokenID:     tokenID,
		Attributes: []Attribute{
			{TraitType: "Content Hash", Value: contentHash},
			{TraitType: "Location", Value: locationValue},
			{TraitType: "Visibility", Value: visibility},
			{TraitType: "Created At", Value: createdAt.UTC().Format(time.RFC3339)},
		},
	}
}

// Config holds the Pinata API credentials and endpoint
type Config struct {
	BaseURL      string
	APIKey       string
	SecretAPIKey string
}

// Client pins content to IPFS
//
//go:generate mockgen -source=client.go -destination=../mocks/pinning.go -package=mocks -mock_names=Client=MockPinningClient
type Client interface {
	// PinFile pins raw content, returning the CID
	PinFile(ctx context.Context, filename string, r io.Reader) (*PinResult, error)
	// PinJSON canonicalizes and pins a JSON document, returning the CID
	PinJSON(ctx context.Context, v interface{}) (*PinResult, error)
	// TestCredentials reports whether the configured credentials are accepted
	TestCredentials(ctx context.Context) bool
	// SniffContentType detects the MIME type of content bytes
	SniffContentType(data []byte) string
}

type pinataClient struct {
	cfg  Config
	http adapter.HTTPClient
	json adapter.JSON
	jcs  adapter.JCS
}

// NewClient creates a Pinata pinning client
func NewClient(cfg Config, httpClient adapter.HTTPClient, jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &pinataClient{
		cfg:  cfg,
		http: httpClient,
		json: jsonAdapter,
		jcs:  jcsAdapter,
	}
}

func (c *pinataClient) authHeaders() map[string]string {
	return map[string]string{
		"pinata_api_key":        c.cfg.APIKey,
		"pinata_secret_api_key": c.cfg.SecretAPIKey,
	}
}

// PinFile pins raw content via pinFileToIPFS
func (c *pinataClient) PinFile(ctx context.Context, filename string, r io.Reader) (*PinResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	respBody, err := c.http.Post(ctx, c.cfg.BaseURL+"/pinning/pinFileToIPFS",
		writer.FormDataContentType(), c.authHeaders(), &body)
	if err != nil {
		return nil, fmt.Errorf("failed to pin file: %w", err)
	}

	var result PinResult
	if err := c.json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode pin response: %w", err)
	}
	if !ValidCID(result.IpfsHash) {
		return nil, fmt.Errorf("pin response carries malformed CID: %q", result.IpfsHash)
	}

	return &result, nil
}

// PinJSON canonicalizes and pins a JSON document via pinJSONToIPFS.
// Canonicalization keeps the pinned bytes identical for identical documents,
// so re-pinning the same capsule metadata yields the same CID.
func (c *pinataClient) PinJSON(ctx context.Context, v interface{}) (*PinResult, error) {
	raw, err := c.json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	canonical, err := c.jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize document: %w", err)
	}

	respBody, err := c.http.Post(ctx, c.cfg.BaseURL+"/pinning/pinJSONToIPFS",
		"application/json", c.authHeaders(), bytes.NewReader(canonical))
	if err != nil {
		return nil, fmt.Errorf("failed to pin JSON: %w", err)
	}

	var result PinResult
	if err := c.json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode pin response: %w", err)
	}
	if !ValidCID(result.IpfsHash) {
		return nil, fmt.Errorf("pin response carries malformed CID: %q", result.IpfsHash)
	}

	return &result, nil
}

// TestCredentials reports whether the configured credentials are accepted
func (c *pinataClient) TestCredentials(ctx context.Context) bool {
	_, err := c.http.GetBytes(ctx, c.cfg.BaseURL+"/data/testAuthentication", c.authHeaders())
	return err == nil
}

// SniffContentType detects the MIME type of content bytes
func (c *pinataClient) SniffContentType(data []byte) string {
	return mimetype.Detect(data).String()
}

// GatewayURLs returns redundant public gateway URLs for a CID
func GatewayURLs(cid string) []string {
	return []string{
		"https://gateway.pinata.cloud/ipfs/" + cid,
		"https://ipfs.io/ipfs/" + cid,
		"https://cloudflare-ipfs.com/ipfs/" + cid,
		"https://dweb.link/ipfs/" + cid,
	}
}

// ValidCID reports whether s is a well-formed CIDv0 or CIDv1
func ValidCID(s string) bool {
	return cidV0Re.MatchString(s) || cidV1Re.MatchString(s)
}
