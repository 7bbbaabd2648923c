package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"web3-risk-analyzer/models"

	"gopkg.in/yaml.v3"
)

// YAMLWriter exports analysis results as YAML reports
type YAMLWriter struct {
	indent int
	now    func() time.Time
}

func NewYAMLWriter() *YAMLWriter {
	return &YAMLWriter{
		indent: 2,
		now:    time.Now,
	}
}

type resultReport struct {
	AnalysisInfo analysisInfo `yaml:"analysis_info"`
	Result       any          `yaml:"result"`
}

type analysisInfo struct {
	Type      string `yaml:"type"`
	Address   string `yaml:"address"`
	TokenID   string `yaml:"token_id,omitempty"`
	Timestamp string `yaml:"analysis_timestamp"`
}

// WriteAnalysisResult writes the result into outputDir and returns the file path
func (w *YAMLWriter) WriteAnalysisResult(result models.AnalysisResult, outputDir string) (string, error) {
	if err := EnsureDirectory(outputDir); err != nil {
		return "", err
	}

	timestamp := w.now()
	filename := w.generateResultFilename(result, outputDir, timestamp)
	content, err := w.formatAnalysisResult(result, timestamp)
	if err != nil {
		return "", err
	}

	if err := w.writeToFile(filename, content); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// Write renders the result report to an explicit file path
func (w *YAMLWriter) Write(result models.AnalysisResult, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := EnsureDirectory(dir); err != nil {
			return err
		}
	}
	content, err := w.formatAnalysisResult(result, w.now())
	if err != nil {
		return err
	}
	return w.writeToFile(path, content)
}

func (w *YAMLWriter) formatAnalysisResult(result models.AnalysisResult, timestamp time.Time) ([]byte, error) {
	report := resultReport{
		AnalysisInfo: analysisInfo{
			Type:      result.Kind.String(),
			Address:   result.PrimaryAddress(),
			Timestamp: timestamp.Format(time.RFC3339),
		},
		Result: result.Payload(),
	}
	if result.Kind == models.AnalysisNFT && result.NFT != nil {
		report.AnalysisInfo.TokenID = result.NFT.TokenID
	}

	var sb strings.Builder
	sb.WriteString("# Web3 Risk Analysis Results\n")
	sb.WriteString("# Generated: " + timestamp.Format(time.RFC3339) + "\n\n")

	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(w.indent)
	if err := enc.Encode(report); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	return []byte(sb.String()), nil
}

func (w *YAMLWriter) generateResultFilename(result models.AnalysisResult, outputDir string, timestamp time.Time) string {
	name := result.Kind.String() + "_" + SanitizeFilename(result.PrimaryAddress())
	if result.Kind == models.AnalysisNFT && result.NFT != nil && result.NFT.TokenID != "" {
		name += "_" + SanitizeFilename(result.NFT.TokenID)
	}
	return filepath.Join(outputDir, name+"_"+GenerateTimestamp(timestamp)+".yml")
}

func (w *YAMLWriter) writeToFile(filename string, content []byte) error {
	return os.WriteFile(filename, content, 0644)
}
