package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisTypeEndpoints(t *testing.T) {
	assert.Equal(t, "/api/wallet-scan", AnalysisWallet.Endpoint())
	assert.Equal(t, "/api/collection-check", AnalysisCollection.Endpoint())
	assert.Equal(t, "/api/nft-analyzer", AnalysisNFT.Endpoint())
}

func TestRequestBody(t *testing.T) {
	tests := []struct {
		name string
		req  AnalysisRequest
		want string
	}{
		{
			name: "wallet",
			req:  AnalysisRequest{Type: AnalysisWallet, Address: "0xabc", TokenID: "ignored"},
			want: `{"address":"0xabc"}`,
		},
		{
			name: "collection",
			req:  AnalysisRequest{Type: AnalysisCollection, Address: "0xBC4C"},
			want: `{"contractAddress":"0xBC4C"}`,
		},
		{
			name: "nft",
			req:  AnalysisRequest{Type: AnalysisNFT, Address: "0xBC4C", TokenID: "1234"},
			want: `{"contractAddress":"0xBC4C","tokenId":"1234"}`,
		},
		{
			name: "empty address is sent as is",
			req:  AnalysisRequest{Type: AnalysisWallet},
			want: `{"address":""}`,
		},
		{
			name: "address is not trimmed",
			req:  AnalysisRequest{Type: AnalysisWallet, Address: " 0xabc "},
			want: `{"address":" 0xabc "}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.req.Body())
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestParseAnalysisType(t *testing.T) {
	got, err := ParseAnalysisType(" NFT ")
	require.NoError(t, err)
	assert.Equal(t, AnalysisNFT, got)

	_, err = ParseAnalysisType("token")
	assert.Error(t, err)
}

func TestOnlyNFTNeedsTokenID(t *testing.T) {
	assert.False(t, AnalysisWallet.NeedsTokenID())
	assert.False(t, AnalysisCollection.NeedsTokenID())
	assert.True(t, AnalysisNFT.NeedsTokenID())
}

func TestPlaceholdersPerType(t *testing.T) {
	for _, at := range AnalysisTypes {
		assert.Len(t, at.Placeholders(), 3, at.String())
		assert.NotEmpty(t, at.Hint(), at.String())
	}
}

func TestAttributeValueAcceptsScalars(t *testing.T) {
	var meta NFTMetadata
	data := `{"verified":true,"attributes":[
		{"trait_type":"Background","value":"Blue"},
		{"type":"Level","value":7},
		{"trait_type":"Legendary","value":false}
	]}`
	require.NoError(t, json.Unmarshal([]byte(data), &meta))
	require.Len(t, meta.Attributes, 3)

	assert.Equal(t, "Background", meta.Attributes[0].Label())
	assert.Equal(t, AttributeValue("Blue"), meta.Attributes[0].Value)
	assert.Equal(t, "Level", meta.Attributes[1].Label())
	assert.Equal(t, AttributeValue("7"), meta.Attributes[1].Value)
	assert.Equal(t, AttributeValue("false"), meta.Attributes[2].Value)
}

func TestResultAccessorsFollowKind(t *testing.T) {
	result := AnalysisResult{
		Kind:       AnalysisCollection,
		Collection: &CollectionResult{ContractAddress: "0xcoll", RiskLevel: "medium"},
	}
	assert.Equal(t, "0xcoll", result.PrimaryAddress())
	assert.Equal(t, "medium", result.RiskLevel())
	assert.Same(t, result.Collection, result.Payload())

	assert.Empty(t, AnalysisResult{Kind: AnalysisNFT}.PrimaryAddress())
}

func TestHasPrice(t *testing.T) {
	zero, price := 0.0, 1.5
	assert.False(t, TokenRisk{}.HasPrice())
	assert.False(t, TokenRisk{Price: &zero}.HasPrice())
	assert.True(t, TokenRisk{Price: &price}.HasPrice())
	assert.False(t, CollectionResult{FloorPrice: &zero}.HasFloorPrice())
}
