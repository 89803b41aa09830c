package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/porter/internal/executor"
	"github.com/studiowebux/porter/internal/render"
	"github.com/studiowebux/porter/internal/types"
	"github.com/studiowebux/porter/internal/validator"
)

// buildSpec reads the current field values into a request
func (m *Model) buildSpec() (types.RequestSpec, error) {
	return types.NewRequestSpec(
		m.requestName,
		m.methodSelect.Value(),
		strings.TrimSpace(m.urlInput.Value()),
		m.collectHeaders(),
		m.bodyEditor.Value(),
	)
}

// send validates, saves and dispatches the request. A send while another is
// in flight supersedes it.
func (m *Model) send() tea.Cmd {
	if err := validator.ValidateURL(m.urlInput.Value()); err != nil {
		m.setErrorMessage(err.Error())
		return nil
	}

	spec, err := m.buildSpec()
	if err != nil {
		m.setErrorMessage(err.Error())
		return nil
	}

	m.persist(spec)

	m.requestSeq++
	seq := m.requestSeq
	m.loading = true
	m.errorMsg = ""
	m.fullErrorMsg = ""
	m.setStatusMessage("Sending request...")
	m.log.WithFields(logrus.Fields{
		"seq":    seq,
		"method": spec.Method,
		"url":    spec.URL,
	}).Info("dispatching request")

	dispatch := m.dispatch
	opts := m.executorOptions()
	return func() tea.Msg {
		return responseMsg{seq: seq, spec: spec, result: dispatch(context.Background(), spec, opts)}
	}
}

func (m *Model) executorOptions() executor.Options {
	if m.cfg == nil {
		return executor.Options{VerifyTLS: true}
	}
	return executor.Options{
		VerifyTLS:      m.cfg.VerifyTLS,
		TimeoutSeconds: m.cfg.RequestTimeout,
	}
}

// save writes the current request to the collection file
func (m *Model) save() {
	spec, err := m.buildSpec()
	if err != nil {
		m.setErrorMessage(err.Error())
		return
	}
	if m.persist(spec) {
		m.setStatusMessage(fmt.Sprintf("Saved to %s", m.store.Path()))
	}
}

// persist saves spec, reporting failures in the status bar. The request is
// still sent when saving fails.
func (m *Model) persist(spec types.RequestSpec) bool {
	if m.store == nil {
		return false
	}
	if err := m.store.SaveRequest(spec); err != nil {
		m.log.WithError(err).WithField("file", m.store.Path()).Error("failed to save request")
		m.setErrorMessage(fmt.Sprintf("Failed to save request: %v", err))
		return false
	}
	m.requestName = spec.Name
	return true
}

// copyBody puts the response body on the clipboard
func (m *Model) copyBody() tea.Cmd {
	if m.response == nil {
		m.setStatusMessage("No response to copy")
		return nil
	}
	text := m.bodyText()
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return statusMsg("Response body copied to clipboard")
	}
}

func (m *Model) nextTab() {
	m.responseTab = (m.responseTab + 1) % ResponseTab(len(tabNames))
	m.responseView.GotoTop()
	m.updateResponseView()
}

func (m *Model) openFilter() tea.Cmd {
	m.mode = ModeFilter
	m.filterInput.SetValue(m.filterExpr)
	m.filterInput.CursorEnd()
	return m.filterInput.Focus()
}

func (m *Model) closeFilter() {
	m.mode = ModeNormal
	m.filterInput.Blur()
}

// applyFilter sets the JMESPath expression for the Body tab. An empty
// expression clears it.
func (m *Model) applyFilter(expr string) {
	expr = strings.TrimSpace(expr)
	if expr != "" && !render.IsValidFilter(expr) {
		m.setErrorMessage(fmt.Sprintf("Invalid filter expression: %s", expr))
		return
	}
	m.filterExpr = expr
	m.errorMsg = ""
	m.fullErrorMsg = ""
	m.closeFilter()
	m.responseTab = TabBody
	m.responseView.GotoTop()
	m.updateResponseView()
	if expr == "" {
		m.setStatusMessage("Filter cleared")
	} else {
		m.setStatusMessage(fmt.Sprintf("Filter: %s", expr))
	}
}

// bodyText is the Body tab content without highlighting
func (m *Model) bodyText() string {
	if m.filterExpr == "" {
		return render.Body(m.response)
	}
	out, err := render.FilteredBody(m.response, m.filterExpr)
	if err != nil {
		return fmt.Sprintf("Filter error: %v\n\n%s", err, render.Body(m.response))
	}
	return out
}

// updateResponseView refreshes the viewport from the active tab
func (m *Model) updateResponseView() {
	if m.response == nil {
		m.responseView.SetContent(styleSubtle.Render("No response yet. Press ctrl+r to send."))
		return
	}

	var content string
	switch m.responseTab {
	case TabHeaders:
		content = render.Headers(m.response)
	case TabRaw:
		content = render.Raw(m.response)
	default:
		content = render.Highlight(m.bodyText())
	}
	m.responseView.SetContent(content)
}
