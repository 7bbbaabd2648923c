package tui

import (
	"context"

	"web3-risk-analyzer/client"
	"web3-risk-analyzer/models"
	"web3-risk-analyzer/utils"

	tea "github.com/charmbracelet/bubbletea"
)

// AnalysisDoneMsg carries the outcome of one submitted analysis
type AnalysisDoneMsg struct {
	Request models.AnalysisRequest
	Result  models.AnalysisResult
	Err     error
}

// ExportDoneMsg reports a YAML export of a result
type ExportDoneMsg struct {
	Path string
	Err  error
}

// analyzeCmd runs the request off the event loop. It has no timeout of its
// own; the analyzer decides how long to wait.
func analyzeCmd(analyzer client.Analyzer, req models.AnalysisRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := analyzer.Analyze(context.Background(), req)
		return AnalysisDoneMsg{
			Request: req,
			Result:  result,
			Err:     err,
		}
	}
}

func exportResultCmd(writer *utils.YAMLWriter, result models.AnalysisResult, outputDir string) tea.Cmd {
	return func() tea.Msg {
		path, err := writer.WriteAnalysisResult(result, outputDir)
		return ExportDoneMsg{Path: path, Err: err}
	}
}
