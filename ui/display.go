package ui

import (
	"fmt"
	"io"
	"strings"

	"web3-risk-analyzer/models"
)

// PrintBanner displays the application banner
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, frameStyle.Render("    ╔══════════════════════════════════════════════════╗"))
	fmt.Fprintln(w, frameStyle.Render("    ║  ")+titleStyle.Render("Web3 Risk Analyzer                              ")+frameStyle.Render("║"))
	fmt.Fprintln(w, frameStyle.Render("    ║  ")+"Wallets, NFT collections and individual NFTs    "+frameStyle.Render("║"))
	fmt.Fprintln(w, frameStyle.Render("    ╚══════════════════════════════════════════════════╝"))
	fmt.Fprintln(w, subtitleStyle.Render("    Analyze Ethereum wallets, NFT collections, and individual NFTs for security risks"))
}

// PrintSectionHeader prints a formatted section header
func PrintSectionHeader(w io.Writer, title string) {
	headerContent := fmt.Sprintf("─ %s ", title)
	remainingWidth := 60 - len([]rune(headerContent))
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	dashLine := strings.Repeat("─", remainingWidth)
	fmt.Fprintln(w, frameStyle.Render("┌"+headerContent+dashLine+"┐"))
}

// PrintSectionFooter prints a formatted section footer
func PrintSectionFooter(w io.Writer) {
	fmt.Fprintln(w, frameStyle.Render("└"+strings.Repeat("─", 60)+"┘"))
}

// PrintResult writes the rendered result view
func PrintResult(w io.Writer, result models.AnalysisResult) {
	fmt.Fprintln(w, RenderResult(result, RenderOptions{}))
}

// PrintError writes an analysis failure message
func PrintError(w io.Writer, message string) {
	fmt.Fprintln(w, errorStyle.Render("  ✘ "+message))
}

// PrintSuccess writes a confirmation line
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintln(w, successStyle.Render("  ✔ "+message))
}
