package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type WalletResult struct {
	Address    string       `json:"address" yaml:"address"`
	ETHBalance string       `json:"ethBalance" yaml:"eth_balance"`
	RiskLevel  string       `json:"riskLevel" yaml:"risk_level"`
	RiskScore  float64      `json:"riskScore" yaml:"risk_score"`
	Tokens     []TokenRisk  `json:"tokens" yaml:"tokens"`
	NFTs       []NFTHolding `json:"nfts" yaml:"nfts"`
	Summary    string       `json:"summary" yaml:"summary"`
}

type TokenRisk struct {
	Symbol      string   `json:"symbol" yaml:"symbol"`
	Balance     string   `json:"balance" yaml:"balance"`
	Price       *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	RiskLevel   string   `json:"riskLevel" yaml:"risk_level"`
	RiskFactors []string `json:"riskFactors" yaml:"risk_factors"`
}

// HasPrice is false for a missing or zero price
func (t TokenRisk) HasPrice() bool {
	return t.Price != nil && *t.Price != 0
}

type NFTHolding struct {
	Name        string   `json:"name" yaml:"name"`
	RiskLevel   string   `json:"riskLevel" yaml:"risk_level"`
	RiskFactors []string `json:"riskFactors" yaml:"risk_factors"`
}

type CollectionResult struct {
	ContractAddress string   `json:"contractAddress" yaml:"contract_address"`
	Name            string   `json:"name" yaml:"name"`
	TotalSupply     int64    `json:"totalSupply" yaml:"total_supply"`
	FloorPrice      *float64 `json:"floorPrice,omitempty" yaml:"floor_price,omitempty"`
	HolderCount     int64    `json:"holderCount" yaml:"holder_count"`
	TopHolders      []Holder `json:"topHolders" yaml:"top_holders"`
	RiskLevel       string   `json:"riskLevel" yaml:"risk_level"`
	RiskFactors     []string `json:"riskFactors" yaml:"risk_factors"`
	AuditStatus     string   `json:"auditStatus" yaml:"audit_status"`
}

// HasFloorPrice is false for a missing or zero floor price
func (c CollectionResult) HasFloorPrice() bool {
	return c.FloorPrice != nil && *c.FloorPrice != 0
}

type Holder struct {
	Address    string  `json:"address" yaml:"address"`
	Count      int64   `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

type NFTResult struct {
	ContractAddress string       `json:"contractAddress" yaml:"contract_address"`
	TokenID         string       `json:"tokenId" yaml:"token_id"`
	Name            string       `json:"name" yaml:"name"`
	Description     string       `json:"description" yaml:"description"`
	RiskLevel       string       `json:"riskLevel" yaml:"risk_level"`
	RiskFactors     []string     `json:"riskFactors" yaml:"risk_factors"`
	Metadata        *NFTMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type NFTMetadata struct {
	Collection string      `json:"collection,omitempty" yaml:"collection,omitempty"`
	Owner      string      `json:"owner,omitempty" yaml:"owner,omitempty"`
	Verified   bool        `json:"verified" yaml:"verified"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

type Attribute struct {
	TraitType string         `json:"trait_type,omitempty" yaml:"trait_type,omitempty"`
	Type      string         `json:"type,omitempty" yaml:"type,omitempty"`
	Value     AttributeValue `json:"value" yaml:"value"`
}

// Label prefers trait_type and falls back to type
func (a Attribute) Label() string {
	if a.TraitType != "" {
		return a.TraitType
	}
	return a.Type
}

// AttributeValue holds an attribute value as display text. Marketplaces
// emit numbers and booleans here as often as strings.
type AttributeValue string

func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = AttributeValue(s)
		return nil
	}
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		*v = AttributeValue(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	}
	*v = AttributeValue(data)
	return nil
}

// AnalysisResult is a decoded backend response tagged with the analysis
// type that produced it. Exactly one payload matches Kind.
type AnalysisResult struct {
	Kind       AnalysisType
	Wallet     *WalletResult
	Collection *CollectionResult
	NFT        *NFTResult
}

// PrimaryAddress is the address offered by the copy action
func (r AnalysisResult) PrimaryAddress() string {
	switch r.Kind {
	case AnalysisWallet:
		if r.Wallet != nil {
			return r.Wallet.Address
		}
	case AnalysisCollection:
		if r.Collection != nil {
			return r.Collection.ContractAddress
		}
	case AnalysisNFT:
		if r.NFT != nil {
			return r.NFT.ContractAddress
		}
	}
	return ""
}

// RiskLevel returns the overall risk level string of the payload
func (r AnalysisResult) RiskLevel() string {
	switch r.Kind {
	case AnalysisWallet:
		if r.Wallet != nil {
			return r.Wallet.RiskLevel
		}
	case AnalysisCollection:
		if r.Collection != nil {
			return r.Collection.RiskLevel
		}
	case AnalysisNFT:
		if r.NFT != nil {
			return r.NFT.RiskLevel
		}
	}
	return ""
}

// Payload returns the variant's struct, used for exports
func (r AnalysisResult) Payload() any {
	switch r.Kind {
	case AnalysisWallet:
		return r.Wallet
	case AnalysisCollection:
		return r.Collection
	case AnalysisNFT:
		return r.NFT
	}
	return nil
}
