package tui

import (
	"web3-risk-analyzer/client"
	"web3-risk-analyzer/models"
	"web3-risk-analyzer/utils"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// focusArea is the form control receiving key input
type focusArea int

const (
	focusSelector focusArea = iota
	focusAddress
	focusTokenID
)

const (
	sidebarWidth   = 28
	maxSessionRows = 200
)

// Options wires the analyzer page to its collaborators
type Options struct {
	Analyzer  client.Analyzer
	Clipboard utils.Clipboard
	Logger    *zap.Logger
	// OutputDir enables a YAML export of every successful result
	OutputDir string
}

// Model is the analyzer page state. It is only changed inside Update.
type Model struct {
	width  int
	height int

	// Form
	analysisType     models.AnalysisType
	focus            focusArea
	addressInput     textinput.Model
	tokenIDInput     textinput.Model
	placeholderIndex int

	// Request lifecycle
	loading     bool
	spinner     spinner.Model
	result      *models.AnalysisResult
	alert       string
	submissions int

	resultScrollOffset int

	// Sidebar session log
	sessionLog []string

	analyzer  client.Analyzer
	clipboard utils.Clipboard
	logger    *zap.Logger
	writer    *utils.YAMLWriter
	outputDir string

	err error
}

// NewModel creates the analyzer page with the wallet analysis selected
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	address := textinput.New()
	address.Prompt = ""
	address.CharLimit = 128
	address.Width = 46
	address.PlaceholderStyle = placeholderStyle
	address.Focus()

	tokenID := textinput.New()
	tokenID.Prompt = ""
	tokenID.Placeholder = "Token ID"
	tokenID.CharLimit = 80
	tokenID.Width = 12
	tokenID.PlaceholderStyle = placeholderStyle

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = focusMarkerStyle

	m := Model{
		analysisType: models.AnalysisWallet,
		focus:        focusAddress,
		addressInput: address,
		tokenIDInput: tokenID,
		spinner:      spin,
		sessionLog:   []string{},
		analyzer:     opts.Analyzer,
		clipboard:    opts.Clipboard,
		logger:       logger.Named("AnalyzerPage"),
		outputDir:    opts.OutputDir,
	}
	if opts.OutputDir != "" {
		m.writer = utils.NewYAMLWriter()
	}
	m.applyPlaceholder()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, placeholderTickCmd())
}

// Loading reports whether an analysis request is outstanding
func (m Model) Loading() bool {
	return m.loading
}

// Result returns the last successful result, nil when there is none
func (m Model) Result() *models.AnalysisResult {
	return m.result
}

// Alert returns the pending alert text
func (m Model) Alert() string {
	return m.alert
}

func (m *Model) applyPlaceholder() {
	placeholders := m.analysisType.Placeholders()
	if len(placeholders) == 0 {
		m.addressInput.Placeholder = ""
		return
	}
	m.addressInput.Placeholder = placeholders[m.placeholderIndex%len(placeholders)]
}
