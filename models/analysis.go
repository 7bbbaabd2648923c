package models

import (
	"fmt"
	"strings"
)

// AnalysisType selects which backend analysis is run
type AnalysisType int

const (
	AnalysisWallet AnalysisType = iota
	AnalysisCollection
	AnalysisNFT
)

// AnalysisTypes lists the selector entries in display order
var AnalysisTypes = []AnalysisType{AnalysisWallet, AnalysisCollection, AnalysisNFT}

func (t AnalysisType) String() string {
	switch t {
	case AnalysisWallet:
		return "wallet"
	case AnalysisCollection:
		return "collection"
	case AnalysisNFT:
		return "nft"
	}
	return fmt.Sprintf("AnalysisType(%d)", int(t))
}

// Label is the selector caption
func (t AnalysisType) Label() string {
	switch t {
	case AnalysisWallet:
		return "Wallet"
	case AnalysisCollection:
		return "Collection"
	case AnalysisNFT:
		return "NFT"
	}
	return t.String()
}

// Endpoint returns the backend route for the analysis type
func (t AnalysisType) Endpoint() string {
	switch t {
	case AnalysisWallet:
		return "/api/wallet-scan"
	case AnalysisCollection:
		return "/api/collection-check"
	case AnalysisNFT:
		return "/api/nft-analyzer"
	}
	return ""
}

// Placeholders returns the rotating input hints shown in the address field
func (t AnalysisType) Placeholders() []string {
	switch t {
	case AnalysisWallet:
		return []string{
			"0x742d35Cc6634C0532925a3b8D4C0C3c6c8C8C6C6",
			"Enter Ethereum wallet address...",
			"Analyze wallet for risks...",
		}
	case AnalysisCollection:
		return []string{
			"0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
			"Enter NFT collection contract address...",
			"Analyze collection risks...",
		}
	case AnalysisNFT:
		return []string{
			"0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
			"Enter NFT contract address...",
			"Analyze specific NFT...",
		}
	}
	return nil
}

// Hint describes what the user should enter for the analysis type
func (t AnalysisType) Hint() string {
	switch t {
	case AnalysisWallet:
		return "Enter an Ethereum wallet address to analyze tokens and NFTs for risks"
	case AnalysisCollection:
		return "Enter an NFT collection contract address to analyze holder distribution and risks"
	case AnalysisNFT:
		return "Enter an NFT contract address and token ID to analyze metadata and ownership"
	}
	return ""
}

// NeedsTokenID reports whether the token id field applies to the type
func (t AnalysisType) NeedsTokenID() bool {
	return t == AnalysisNFT
}

// ParseAnalysisType accepts the lowercase names used on the command line
func ParseAnalysisType(s string) (AnalysisType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wallet":
		return AnalysisWallet, nil
	case "collection":
		return AnalysisCollection, nil
	case "nft":
		return AnalysisNFT, nil
	}
	return 0, fmt.Errorf("unknown analysis type %q (expected wallet, collection or nft)", s)
}

// AnalysisRequest is one submission from the analyzer form.
// The address is sent exactly as entered.
type AnalysisRequest struct {
	Type    AnalysisType
	Address string
	TokenID string
}

type walletScanBody struct {
	Address string `json:"address"`
}

type collectionCheckBody struct {
	ContractAddress string `json:"contractAddress"`
}

type nftAnalyzerBody struct {
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenId"`
}

// Body builds the JSON payload for the request's endpoint
func (r AnalysisRequest) Body() any {
	switch r.Type {
	case AnalysisCollection:
		return collectionCheckBody{ContractAddress: r.Address}
	case AnalysisNFT:
		return nftAnalyzerBody{ContractAddress: r.Address, TokenID: r.TokenID}
	default:
		return walletScanBody{Address: r.Address}
	}
}
