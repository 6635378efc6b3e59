package pinning_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofcapsule/pc-anchor/internal/adapter"
	"github.com/proofcapsule/pc-anchor/internal/mocks"
	"github.com/proofcapsule/pc-anchor/internal/pinning"
)

const (
	testCIDv0 = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	testHash  = "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func newTestClient(t *testing.T) (pinning.Client, *mocks.MockHTTPClient) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := pinning.NewClient(pinning.Config{
		APIKey:       "key",
		SecretAPIKey: "secret",
	}, httpClient, adapter.NewJSON(), adapter.NewJCS())
	return client, httpClient
}

func TestPinFile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		httpClient.EXPECT().
			Post(ctx, "https://api.pinata.cloud/pinning/pinFileToIPFS",
				gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, contentType string, headers map[string]string, body io.Reader) ([]byte, error) {
				assert.True(t, strings.HasPrefix(contentType, "multipart/form-data"))
				assert.Equal(t, "key", headers["pinata_api_key"])
				assert.Equal(t, "secret", headers["pinata_secret_api_key"])

				raw, err := io.ReadAll(body)
				require.NoError(t, err)
				assert.Contains(t, string(raw), "hello capsule")

				return []byte(fmt.Sprintf(`{"IpfsHash":%q,"PinSize":13,"Timestamp":"2026-08-28T00:00:00Z"}`, testCIDv0)), nil
			})

		result, err := client.PinFile(ctx, "photo.jpg", bytes.NewBufferString("hello capsule"))
		require.NoError(t, err)
		assert.Equal(t, testCIDv0, result.IpfsHash)
		assert.Equal(t, int64(13), result.PinSize)
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		httpClient.EXPECT().
			Post(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("unexpected status code 401"))

		_, err := client.PinFile(ctx, "photo.jpg", bytes.NewBufferString("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to pin file")
	})

	t.Run("malformed CID rejected", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		httpClient.EXPECT().
			Post(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte(`{"IpfsHash":"not-a-cid"}`), nil)

		_, err := client.PinFile(ctx, "photo.jpg", bytes.NewBufferString("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed CID")
	})
}

func TestPinJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("body is canonicalized", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		var sent []byte
		httpClient.EXPECT().
			Post(ctx, "https://api.pinata.cloud/pinning/pinJSONToIPFS",
				"application/json", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, _ map[string]string, body io.Reader) ([]byte, error) {
				var err error
				sent, err = io.ReadAll(body)
				require.NoError(t, err)
				return []byte(fmt.Sprintf(`{"IpfsHash":%q}`, testCIDv0)), nil
			})

		doc := map[string]interface{}{"b": 2, "a": 1}
		result, err := client.PinJSON(ctx, doc)
		require.NoError(t, err)
		assert.Equal(t, testCIDv0, result.IpfsHash)
		// JCS orders keys lexicographically
		assert.JSONEq(t, `{"a":1,"b":2}`, string(sent))
		assert.True(t, strings.Index(string(sent), `"a"`) < strings.Index(string(sent), `"b"`))
	})

	t.Run("identical documents produce identical bodies", func(t *testing.T) {
		client, httpClient := newTestClient(t)

		var bodies []string
		httpClient.EXPECT().
			Post(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, _ map[string]string, body io.Reader) ([]byte, error) {
				raw, _ := io.ReadAll(body)
				bodies = append(bodies, string(raw))
				return []byte(fmt.Sprintf(`{"IpfsHash":%q}`, testCIDv0)), nil
			}).Times(2)

		meta := pinning.NewCapsuleMetadata(7, "desc", "Lisbon", testHash, testCIDv0, true, testTime(t))
		_, err := client.PinJSON(ctx, meta)
		require.NoError(t, err)
		_, err = client.PinJSON(ctx, meta)
		require.NoError(t, err)

		require.Len(t, bodies, 2)
		assert.Equal(t, bodies[0], bodies[1])
	})
}

func TestTestCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted", func(t *testing.T) {
		client, httpClient := newTestClient(t)
		httpClient.EXPECT().
			GetBytes(ctx, "https://api.pinata.cloud/data/testAuthentication", gomock.Any()).
			Return([]byte(`{"message":"Congratulations!"}`), nil)

		assert.True(t, client.TestCredentials(ctx))
	})

	t.Run("rejected", func(t *testing.T) {
		client, httpClient := newTestClient(t)
		httpClient.EXPECT().
			GetBytes(ctx, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("unexpected status code 401"))

		assert.False(t, client.TestCredentials(ctx))
	})
}

func TestNewCapsuleMetadata(t *testing.T) {
	meta := pinning.NewCapsuleMetadata(42, "a memory", "", testHash, testCIDv0, false, testTime(t))

	assert.Equal(t, "ProofCapsule #42", meta.Name)
	assert.Equal(t, testHash, meta.ContentHash)
	require.Len(t, meta.Attributes, 4)
	assert.Equal(t, pinning.Attribute{TraitType: "Content Hash", Value: testHash}, meta.Attributes[0])
	assert.Equal(t, pinning.Attribute{TraitType: "Location", Value: "Unknown"}, meta.Attributes[1])
	assert.Equal(t, pinning.Attribute{TraitType: "Visibility", Value: "Private"}, meta.Attributes[2])
}

func TestValidCID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"CIDv0", testCIDv0, true},
		{"CIDv1", "bafy" + strings.Repeat("a", 55), true},
		{"too short v0", "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbd", false},
		{"wrong prefix", "Zb2YwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pinning.ValidCID(tt.input))
		})
	}
}

func TestGatewayURLs(t *testing.T) {
	urls := pinning.GatewayURLs(testCIDv0)
	require.Len(t, urls, 4)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/"+testCIDv0, urls[0])
	for _, u := range urls {
		assert.True(t, strings.HasSuffix(u, "/ipfs/"+testCIDv0))
	}
}

func testTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
}
