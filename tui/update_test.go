package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"web3-risk-analyzer/client"
	"web3-risk-analyzer/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	mu       sync.Mutex
	requests []models.AnalysisRequest
	result   models.AnalysisResult
	err      error
}

func (s *stubAnalyzer) Analyze(_ context.Context, req models.AnalysisRequest) (models.AnalysisResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, req)
	return s.result, s.err
}

type fakeClipboard struct {
	copied []string
}

func (f *fakeClipboard) Copy(text string) error {
	f.copied = append(f.copied, text)
	return nil
}

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyCopy     = tea.KeyMsg{Type: tea.KeyCtrlY}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = update(t, m, msg)
	}
	return m
}

// collect runs a command and any batched children, returning their messages
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func analysisDone(t *testing.T, cmd tea.Cmd) AnalysisDoneMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if done, ok := msg.(AnalysisDoneMsg); ok {
			return done
		}
	}
	t.Fatal("no AnalysisDoneMsg produced")
	return AnalysisDoneMsg{}
}

func walletResult(address, risk string) models.AnalysisResult {
	return models.AnalysisResult{
		Kind:   models.AnalysisWallet,
		Wallet: &models.WalletResult{Address: address, ETHBalance: "1", RiskLevel: risk, Summary: "ok"},
	}
}

func TestSubmitWalletLifecycle(t *testing.T) {
	stub := &stubAnalyzer{result: walletResult("0xabc", "low")}
	m := NewModel(Options{Analyzer: stub})

	m = press(t, m, runes("0xabc"))
	m, cmd := update(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "Analyzing...")

	done := analysisDone(t, cmd)
	require.Len(t, stub.requests, 1)
	assert.Equal(t, models.AnalysisRequest{Type: models.AnalysisWallet, Address: "0xabc"}, stub.requests[0])

	m, _ = update(t, m, done)
	assert.False(t, m.Loading())
	require.NotNil(t, m.Result())
	assert.Equal(t, models.AnalysisWallet, m.Result().Kind)
	assert.Empty(t, m.Alert())
	assert.Contains(t, m.View(), "Wallet Analysis")
}

func TestSubmitIgnoredWhileLoading(t *testing.T) {
	stub := &stubAnalyzer{result: walletResult("0xabc", "low")}
	m := NewModel(Options{Analyzer: stub})

	m = press(t, m, runes("0xabc"))
	m, first := update(t, m, keyEnter)
	require.NotNil(t, first)

	m, second := update(t, m, keyEnter)
	assert.Nil(t, second)
	assert.True(t, m.Loading())
	assert.Equal(t, 1, m.submissions)
}

func TestEmptyAddressIsStillSubmitted(t *testing.T) {
	stub := &stubAnalyzer{err: &client.APIError{StatusCode: 400, Message: "Address is required"}}
	m := NewModel(Options{Analyzer: stub})

	m, cmd := update(t, m, keyEnter)
	done := analysisDone(t, cmd)
	require.Len(t, stub.requests, 1)
	assert.Equal(t, "", stub.requests[0].Address)

	m, _ = update(t, m, done)
	assert.Equal(t, "Address is required", m.Alert())
}

func TestFailureShowsAlertAndClearsResult(t *testing.T) {
	stub := &stubAnalyzer{result: walletResult("0xabc", "high")}
	m := NewModel(Options{Analyzer: stub})

	m = press(t, m, runes("0xabc"))
	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, analysisDone(t, cmd))
	require.NotNil(t, m.Result())

	stub.err = &client.APIError{StatusCode: 500}
	m, cmd = update(t, m, keyEnter)
	m, _ = update(t, m, analysisDone(t, cmd))

	assert.False(t, m.Loading())
	assert.Nil(t, m.Result())
	assert.Equal(t, client.DefaultErrorMessage, m.Alert())
	assert.Contains(t, m.View(), client.DefaultErrorMessage)

	// Enter dismisses the alert without submitting again
	m, cmd = update(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Alert())
	assert.Len(t, stub.requests, 2)
}

func TestTransportFailureUsesGenericMessage(t *testing.T) {
	stub := &stubAnalyzer{err: &client.RequestError{Op: "POST /api/wallet-scan", Err: context.DeadlineExceeded}}
	m := NewModel(Options{Analyzer: stub})

	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, analysisDone(t, cmd))
	assert.Equal(t, client.GenericErrorMessage, m.Alert())
}

func TestTokenIDFieldOnlyForNFT(t *testing.T) {
	m := NewModel(Options{Analyzer: &stubAnalyzer{}})
	assert.NotContains(t, m.View(), "Token ID:")

	// Tabbing through the wallet form never lands on the token field
	for i := 0; i < 4; i++ {
		m = press(t, m, keyTab)
		assert.NotEqual(t, focusTokenID, m.focus)
	}

	m = press(t, m, keyShiftTab)
	require.Equal(t, focusSelector, m.focus)
	m = press(t, m, runes("3"))
	assert.Equal(t, models.AnalysisNFT, m.analysisType)
	assert.Contains(t, m.View(), "Token ID:")

	m = press(t, m, keyTab, keyTab)
	assert.Equal(t, focusTokenID, m.focus)
}

func TestNFTSubmissionCarriesTokenID(t *testing.T) {
	stub := &stubAnalyzer{result: models.AnalysisResult{
		Kind: models.AnalysisNFT,
		NFT:  &models.NFTResult{ContractAddress: "0xBC4C", TokenID: "42", RiskLevel: "low"},
	}}
	m := NewModel(Options{Analyzer: stub})

	m = press(t, m, keyShiftTab, runes("3"), keyTab, runes("0xBC4C"), keyTab, runes("42"))
	_, cmd := update(t, m, keyEnter)
	analysisDone(t, cmd)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, models.AnalysisRequest{Type: models.AnalysisNFT, Address: "0xBC4C", TokenID: "42"}, stub.requests[0])
}

func TestTokenIDNotSentForOtherTypes(t *testing.T) {
	stub := &stubAnalyzer{result: walletResult("0xabc", "low")}
	m := NewModel(Options{Analyzer: stub})

	// Leave a token id behind, then switch back to collection
	m = press(t, m, keyShiftTab, runes("3"), keyTab, runes("0xabc"), keyTab, runes("9"), keyShiftTab, keyShiftTab, runes("2"))
	require.Equal(t, models.AnalysisCollection, m.analysisType)

	_, cmd := update(t, m, keyEnter)
	analysisDone(t, cmd)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, models.AnalysisRequest{Type: models.AnalysisCollection, Address: "0xabc"}, stub.requests[0])
}

func TestSwitchingTypeKeepsAddressAndResult(t *testing.T) {
	stub := &stubAnalyzer{result: walletResult("0xabc", "medium")}
	m := NewModel(Options{Analyzer: stub})

	m = press(t, m, runes("0xabc"))
	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, analysisDone(t, cmd))

	m = press(t, m, keyShiftTab, runes("2"))
	assert.Equal(t, models.AnalysisCollection, m.analysisType)
	assert.Equal(t, "0xabc", m.addressInput.Value())

	// The kept result is still rendered by its own kind
	require.NotNil(t, m.Result())
	assert.Equal(t, models.AnalysisWallet, m.Result().Kind)
	assert.Contains(t, m.View(), "Wallet Analysis")
}

func TestSelectorArrowsWrap(t *testing.T) {
	m := NewModel(Options{})
	m = press(t, m, keyShiftTab, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.AnalysisNFT, m.analysisType)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.AnalysisWallet, m.analysisType)
}

func TestPlaceholderRotates(t *testing.T) {
	m := NewModel(Options{})
	placeholders := models.AnalysisWallet.Placeholders()
	assert.Equal(t, placeholders[0], m.addressInput.Placeholder)

	m, cmd := update(t, m, PlaceholderTickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, placeholders[1], m.addressInput.Placeholder)

	m = press(t, m, PlaceholderTickMsg(time.Now()), PlaceholderTickMsg(time.Now()))
	assert.Equal(t, placeholders[0], m.addressInput.Placeholder)
}

func TestCopyResultAddress(t *testing.T) {
	clip := &fakeClipboard{}
	stub := &stubAnalyzer{result: walletResult("0xabcdef0123456789", "low")}
	m := NewModel(Options{Analyzer: stub, Clipboard: clip})

	// Nothing to copy yet
	m = press(t, m, keyCopy)
	assert.Empty(t, clip.copied)

	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, analysisDone(t, cmd))
	press(t, m, keyCopy)
	assert.Equal(t, []string{"0xabcdef0123456789"}, clip.copied)
}

func TestSuccessfulResultIsExported(t *testing.T) {
	dir := t.TempDir()
	stub := &stubAnalyzer{result: walletResult("0xabc", "low")}
	m := NewModel(Options{Analyzer: stub, OutputDir: dir})

	m, cmd := update(t, m, keyEnter)
	m, exportCmd := update(t, m, analysisDone(t, cmd))
	require.NotNil(t, exportCmd)

	msg, ok := exportCmd().(ExportDoneMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.FileExists(t, msg.Path)

	m, _ = update(t, m, msg)
	assert.Empty(t, m.Alert())
}

func TestScrollStaysInRange(t *testing.T) {
	tokens := make([]models.TokenRisk, 40)
	for i := range tokens {
		tokens[i] = models.TokenRisk{Symbol: "TKN", Balance: "1", RiskLevel: "low"}
	}
	stub := &stubAnalyzer{result: models.AnalysisResult{
		Kind:   models.AnalysisWallet,
		Wallet: &models.WalletResult{Address: "0xabc", Tokens: tokens, RiskLevel: "low"},
	}}
	m := NewModel(Options{Analyzer: stub})
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, analysisDone(t, cmd))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 0, m.resultScrollOffset)

	for i := 0; i < 100; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.Equal(t, m.resultLineCount()-m.resultViewportHeight(), m.resultScrollOffset)

	m = press(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, m.resultLineCount()-m.resultViewportHeight()-2, m.resultScrollOffset)
}
