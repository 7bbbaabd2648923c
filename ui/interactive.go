package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"web3-risk-analyzer/client"
	"web3-risk-analyzer/models"
)

// Prompter runs analyses from line-based prompts, one after another,
// until the user quits or input ends.
type Prompter struct {
	Analyzer client.Analyzer
	In       io.Reader
	Out      io.Writer
	// OnResult is called for every successful analysis, e.g. to export it
	OnResult func(models.AnalysisResult)
}

// Run executes the prompt loop. Running out of input ends it cleanly.
func (p *Prompter) Run(ctx context.Context) error {
	if err := p.loop(ctx, bufio.NewReader(p.In)); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (p *Prompter) loop(ctx context.Context, reader *bufio.Reader) error {
	PrintBanner(p.Out)
	analysisType := models.AnalysisWallet

	for {
		PrintSectionHeader(p.Out, "Analysis Setup")
		typeInput, err := p.promptInput(reader, "Analysis type (wallet, collection, nft, q to quit)", analysisType.String())
		if err != nil {
			return err
		}
		if typeInput == "q" || typeInput == "quit" {
			PrintSectionFooter(p.Out)
			return nil
		}
		selected, err := models.ParseAnalysisType(typeInput)
		if err != nil {
			PrintError(p.Out, err.Error())
			PrintSectionFooter(p.Out)
			continue
		}
		analysisType = selected

		fmt.Fprintln(p.Out, subtitleStyle.Render("  "+analysisType.Hint()))
		address, err := p.promptInput(reader, "Address", "")
		if err != nil {
			return err
		}

		var tokenID string
		if analysisType.NeedsTokenID() {
			if tokenID, err = p.promptInput(reader, "Token ID", ""); err != nil {
				return err
			}
		}
		PrintSectionFooter(p.Out)

		fmt.Fprintln(p.Out, subtitleStyle.Render("  Analyzing..."))
		result, err := p.Analyzer.Analyze(ctx, models.AnalysisRequest{
			Type:    analysisType,
			Address: address,
			TokenID: tokenID,
		})
		if err != nil {
			PrintError(p.Out, client.AlertMessage(err))
			continue
		}

		PrintResult(p.Out, result)
		if p.OnResult != nil {
			p.OnResult(result)
		}
	}
}

// promptInput reads one line, returning defaultValue for an empty line.
// io.EOF is returned once input is exhausted.
func (p *Prompter) promptInput(reader *bufio.Reader, prompt, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprint(p.Out, frameStyle.Render(fmt.Sprintf("  %s [default: %s]: ", prompt, defaultValue)))
	} else {
		fmt.Fprint(p.Out, frameStyle.Render(fmt.Sprintf("  %s: ", prompt)))
	}

	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}
