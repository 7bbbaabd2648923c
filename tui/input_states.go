package tui

import (
	"strings"

	"web3-risk-analyzer/models"
	"web3-risk-analyzer/utils"

	tea "github.com/charmbracelet/bubbletea"
)

// Alert state handler
func (m Model) updateAlert(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.alert = ""
	}
	return m, nil
}

// Selector state handler
func (m Model) updateSelector(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		return m.selectType(m.shiftType(-1)), nil
	case "right", "l":
		return m.selectType(m.shiftType(1)), nil
	case "1":
		return m.selectType(models.AnalysisWallet), nil
	case "2":
		return m.selectType(models.AnalysisCollection), nil
	case "3":
		return m.selectType(models.AnalysisNFT), nil
	case "down", "j":
		return m.setFocus(focusAddress)
	}
	return m, nil
}

// selectType switches the analysis type. The address field and the last
// result are left untouched.
func (m Model) selectType(t models.AnalysisType) Model {
	if t == m.analysisType {
		return m
	}
	m.analysisType = t
	m.placeholderIndex = 0
	m.applyPlaceholder()
	if m.focus == focusTokenID && !t.NeedsTokenID() {
		m, _ = m.setFocus(focusAddress)
	}
	return m
}

func (m Model) shiftType(delta int) models.AnalysisType {
	n := len(models.AnalysisTypes)
	for i, t := range models.AnalysisTypes {
		if t == m.analysisType {
			return models.AnalysisTypes[((i+delta)%n+n)%n]
		}
	}
	return models.AnalysisWallet
}

// focusOrder lists the focusable controls; the token id field only
// exists for NFT analysis.
func (m Model) focusOrder() []focusArea {
	if m.analysisType.NeedsTokenID() {
		return []focusArea{focusSelector, focusAddress, focusTokenID}
	}
	return []focusArea{focusSelector, focusAddress}
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	order := m.focusOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	next := order[((idx+delta)%len(order)+len(order))%len(order)]
	return m.setFocus(next)
}

func (m Model) setFocus(f focusArea) (Model, tea.Cmd) {
	if f == focusTokenID && !m.analysisType.NeedsTokenID() {
		f = focusAddress
	}
	m.focus = f
	m.addressInput.Blur()
	m.tokenIDInput.Blur()

	var cmd tea.Cmd
	switch f {
	case focusAddress:
		cmd = m.addressInput.Focus()
	case focusTokenID:
		cmd = m.tokenIDInput.Focus()
	}
	return m, cmd
}

// updateFocusedInput forwards a message to the focused text field
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusAddress:
		m.addressInput, cmd = m.addressInput.Update(msg)
	case focusTokenID:
		m.tokenIDInput, cmd = m.tokenIDInput.Update(msg)
	}
	return m, cmd
}

// submit dispatches the form. The submit control is disabled while a
// request is outstanding, and the address is sent as typed.
func (m Model) submit() (Model, tea.Cmd) {
	if m.loading || m.analyzer == nil {
		return m, nil
	}

	req := models.AnalysisRequest{
		Type:    m.analysisType,
		Address: m.addressInput.Value(),
	}
	if m.analysisType.NeedsTokenID() {
		req.TokenID = m.tokenIDInput.Value()
	}

	m.loading = true
	m.result = nil
	m.resultScrollOffset = 0
	m.submissions++

	m.addSessionAction("Analyze " + m.analysisType.Label())
	if req.Address != "" {
		m.addSessionStatus("Address", utils.TruncateAddress(req.Address))
	}
	if req.TokenID != "" {
		m.addSessionStatus("Token", req.TokenID)
	}

	return m, tea.Batch(analyzeCmd(m.analyzer, req), m.spinner.Tick)
}

func (m Model) viewSelector() string {
	tabs := make([]string, 0, len(models.AnalysisTypes))
	for i, t := range models.AnalysisTypes {
		label := string(rune('1'+i)) + " " + t.Label()
		style := tabStyle
		if t == m.analysisType {
			switch t {
			case models.AnalysisWallet:
				style = walletTabStyle
			case models.AnalysisCollection:
				style = collectionTabStyle
			case models.AnalysisNFT:
				style = nftTabStyle
			}
		}
		tabs = append(tabs, style.Render(label))
	}

	return m.focusMarker(focusSelector) + strings.Join(tabs, " ")
}

func (m Model) viewForm() string {
	var s strings.Builder

	s.WriteString(m.focusMarker(focusAddress) + inputFieldStyle.Render("Address: ") + m.addressInput.View() + "\n")
	if m.analysisType.NeedsTokenID() {
		s.WriteString(m.focusMarker(focusTokenID) + inputFieldStyle.Render("Token ID: ") + m.tokenIDInput.View() + "\n")
	}
	s.WriteString("\n  " + m.viewSubmitButton() + "\n\n")
	s.WriteString("  " + hintStyle.Render(m.analysisType.Hint()))

	return s.String()
}

func (m Model) viewSubmitButton() string {
	if m.loading {
		return buttonDisabledStyle.Render(m.spinner.View() + " Analyzing...")
	}
	return buttonStyle.Render("Analyze")
}

func (m Model) focusMarker(f focusArea) string {
	if m.focus == f {
		return focusMarkerStyle.Render("> ")
	}
	return "  "
}
