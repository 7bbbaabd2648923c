package ui

import (
	"fmt"
	"strings"

	"web3-risk-analyzer/models"
	"web3-risk-analyzer/utils"

	"github.com/charmbracelet/lipgloss"
)

// RenderOptions tweaks result views for the surface they are shown on
type RenderOptions struct {
	// CopyHint is appended to copyable addresses, empty for none
	CopyHint string
}

// RenderResult renders the view for the result's own kind
func RenderResult(result models.AnalysisResult, opts RenderOptions) string {
	switch result.Kind {
	case models.AnalysisWallet:
		if result.Wallet != nil {
			return RenderWallet(*result.Wallet, opts)
		}
	case models.AnalysisCollection:
		if result.Collection != nil {
			return RenderCollection(*result.Collection, opts)
		}
	case models.AnalysisNFT:
		if result.NFT != nil {
			return RenderNFT(*result.NFT, opts)
		}
	}
	return ""
}

func RenderWallet(data models.WalletResult, opts RenderOptions) string {
	var blocks []string

	var header strings.Builder
	header.WriteString(heading("Wallet Analysis", data.RiskLevel) + "\n\n")
	header.WriteString(field("Address", copyable(data.Address, opts)) + "\n")
	header.WriteString(field("ETH Balance", valueStyle.Render(utils.FormatFixed(data.ETHBalance, 4)+" ETH")) + "\n")
	header.WriteString(field("Risk Score", ScoreBar(data.RiskScore)+" "+valueStyle.Render(utils.FormatScore(data.RiskScore)+"/100")))
	blocks = append(blocks, cardStyle.Render(header.String()))

	if len(data.Tokens) > 0 {
		var s strings.Builder
		s.WriteString(sectionTitleStyle.Render(fmt.Sprintf("Tokens (%d)", len(data.Tokens))))
		for _, token := range data.Tokens {
			s.WriteString("\n\n" + valueStyle.Render(token.Symbol) + " " + RiskBadge(token.RiskLevel) + "\n")
			s.WriteString("  " + utils.FormatFixed(token.Balance, 2))
			if token.HasPrice() {
				s.WriteString(" " + priceStyle.Render("($"+utils.FormatTokenValue(token.Balance, *token.Price)+")"))
			}
			if len(token.RiskFactors) > 0 {
				s.WriteString("\n  " + factorStyle.Render("⚠ "+strings.Join(token.RiskFactors, ", ")))
			}
		}
		blocks = append(blocks, cardStyle.Render(s.String()))
	}

	if len(data.NFTs) > 0 {
		var s strings.Builder
		s.WriteString(sectionTitleStyle.Render(fmt.Sprintf("NFTs (%d)", len(data.NFTs))))
		for _, nft := range data.NFTs {
			s.WriteString("\n\n" + valueStyle.Render(nft.Name) + " " + RiskBadge(nft.RiskLevel))
			if len(nft.RiskFactors) > 0 {
				s.WriteString("\n  " + factorStyle.Render("⚠ "+strings.Join(nft.RiskFactors, ", ")))
			}
		}
		blocks = append(blocks, cardStyle.Render(s.String()))
	}

	blocks = append(blocks, cardStyle.Render(sectionTitleStyle.Render("Analysis Summary")+"\n\n"+data.Summary))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func RenderCollection(data models.CollectionResult, opts RenderOptions) string {
	var blocks []string

	var header strings.Builder
	header.WriteString(heading("Collection Analysis", data.RiskLevel) + " " + AuditBadge(data.AuditStatus) + "\n\n")
	header.WriteString(field("Contract", copyable(data.ContractAddress, opts)) + "\n")
	header.WriteString(field("Collection Name", valueStyle.Render(data.Name)) + "\n")
	header.WriteString(field("Total Supply", valueStyle.Render(utils.FormatCount(data.TotalSupply))) + "\n")
	header.WriteString(field("Unique Holders", valueStyle.Render(utils.FormatCount(data.HolderCount))))
	if data.HasFloorPrice() {
		header.WriteString("\n" + field("Floor Price", priceStyle.Render(utils.FormatFloatFixed(*data.FloorPrice, 4)+" ETH")))
	}
	blocks = append(blocks, cardStyle.Render(header.String()))

	if len(data.TopHolders) > 0 {
		var s strings.Builder
		s.WriteString(sectionTitleStyle.Render("Top Holders"))
		for i, holder := range VisibleHolders(data.TopHolders) {
			s.WriteString(fmt.Sprintf("\n#%d  %s  %s  %s",
				i+1,
				monoStyle.Render(utils.TruncateAddress(holder.Address)),
				labelStyle.Render(utils.FormatFloatFixed(holder.Percentage, 1)+"% of supply"),
				valueStyle.Render(fmt.Sprintf("%d NFTs", holder.Count))))
		}
		blocks = append(blocks, cardStyle.Render(s.String()))
	}

	if factors := renderRiskFactors(data.RiskFactors); factors != "" {
		blocks = append(blocks, factors)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func RenderNFT(data models.NFTResult, opts RenderOptions) string {
	var blocks []string

	var header strings.Builder
	header.WriteString(heading("NFT Analysis", data.RiskLevel) + "\n\n")
	header.WriteString(field("Contract", copyable(data.ContractAddress, opts)) + "\n")
	header.WriteString(field("Token ID", valueStyle.Render(data.TokenID)) + "\n")
	header.WriteString(field("Name", valueStyle.Render(data.Name)) + "\n")
	header.WriteString(field("Description", data.Description))
	blocks = append(blocks, cardStyle.Render(header.String()))

	if meta := data.Metadata; meta != nil {
		var s strings.Builder
		s.WriteString(sectionTitleStyle.Render("Metadata") + "\n")
		if meta.Collection != "" {
			s.WriteString("\n" + field("Collection", valueStyle.Render(meta.Collection)))
		}
		if meta.Owner != "" {
			s.WriteString("\n" + field("Owner", monoStyle.Render(utils.TruncateAddress(meta.Owner))))
		}
		verified := noStyle.Render("✘ No")
		if meta.Verified {
			verified = yesStyle.Render("✔ Yes")
		}
		s.WriteString("\n" + field("Verified", verified))

		if attrs := VisibleAttributes(meta.Attributes); len(attrs) > 0 {
			s.WriteString("\n\n" + sectionTitleStyle.Render("Attributes"))
			for _, attr := range attrs {
				s.WriteString("\n  " + attributeLabelStyle.Render(attr.Label()) + ": " + valueStyle.Render(string(attr.Value)))
			}
		}
		blocks = append(blocks, cardStyle.Render(s.String()))
	}

	if factors := renderRiskFactors(data.RiskFactors); factors != "" {
		blocks = append(blocks, factors)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// VisibleHolders returns at most MaxTopHolders entries
func VisibleHolders(holders []models.Holder) []models.Holder {
	if len(holders) > models.MaxTopHolders {
		return holders[:models.MaxTopHolders]
	}
	return holders
}

// VisibleAttributes returns at most MaxAttributes entries
func VisibleAttributes(attrs []models.Attribute) []models.Attribute {
	if len(attrs) > models.MaxAttributes {
		return attrs[:models.MaxAttributes]
	}
	return attrs
}

func renderRiskFactors(factors []string) string {
	if len(factors) == 0 {
		return ""
	}
	var s strings.Builder
	s.WriteString(factorStyle.Bold(true).Render("⚠ Risk Factors"))
	for _, factor := range factors {
		s.WriteString("\n  • " + factorStyle.Render(factor))
	}
	return riskCardStyle.Render(s.String())
}

func heading(title, riskLevel string) string {
	return headingStyle.Render(title) + "  " + RiskBadge(riskLevel)
}

func field(label, value string) string {
	return labelStyle.Render(label+": ") + value
}

func copyable(address string, opts RenderOptions) string {
	if opts.CopyHint == "" {
		return monoStyle.Render(address)
	}
	return monoStyle.Render(address) + " " + labelStyle.Render(opts.CopyHint)
}
