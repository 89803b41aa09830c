package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/studiowebux/porter/internal/collection"
	"github.com/studiowebux/porter/internal/config"
	"github.com/studiowebux/porter/internal/executor"
	"github.com/studiowebux/porter/internal/keybinds"
	"github.com/studiowebux/porter/internal/logging"
	"github.com/studiowebux/porter/internal/navigation"
	"github.com/studiowebux/porter/internal/types"
)

// ResponseTab is the active view of the response panel
type ResponseTab int

const (
	TabBody ResponseTab = iota
	TabHeaders
	TabRaw
)

var tabNames = []string{"Body", "Headers", "Raw"}

func (t ResponseTab) String() string {
	return tabNames[t]
}

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
)

// DispatchFunc sends one request. executor.Send in production.
type DispatchFunc func(ctx context.Context, spec types.RequestSpec, opts executor.Options) *types.ResponseResult

// Model represents the TUI state
type Model struct {
	cfg      *config.Config
	store    *collection.Store
	keybinds *keybinds.Registry
	log      *logrus.Logger
	dispatch DispatchFunc
	version  string
	mode     Mode

	// Navigable fields
	registry        *navigation.Registry
	engine          *navigation.Engine
	focused         widget
	methodSelect    *selectField
	urlInput        *textField
	sendBtn         *buttonField
	headerRows      []*headerRow
	addHeaderBtn    *buttonField
	removeHeaderBtn *buttonField
	bodyEditor      *areaField

	requestName string

	// Response
	response     *types.ResponseResult
	responseTab  ResponseTab
	responseView viewport.Model
	filterInput  textinput.Model
	filterExpr   string

	// In-flight tracking. Every send takes the next seq; only the response
	// carrying the latest seq is applied.
	requestSeq uint64
	loading    bool

	// UI state
	width         int
	height        int
	statusMsg     string
	fullStatusMsg string
	errorMsg      string
	fullErrorMsg  string
}

// Custom message types
type responseMsg struct {
	seq    uint64
	spec   types.RequestSpec
	result *types.ResponseResult
}

type statusMsg string

type errorMsg string

// New creates the workbench. The last saved request, if any, fills the fields.
func New(cfg *config.Config, store *collection.Store, registry *keybinds.Registry, version string) *Model {
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	m := &Model{
		cfg:             cfg,
		store:           store,
		keybinds:        registry,
		log:             logging.GetLogger(),
		dispatch:        executor.Send,
		version:         version,
		mode:            ModeNormal,
		registry:        navigation.NewRegistry(),
		requestName:     types.DefaultRequestName,
		methodSelect:    newMethodSelect(),
		urlInput:        newTextField(fieldURL, "Enter URL (e.g., https://api.example.com/users)"),
		sendBtn:         newButton(fieldSend, "Send"),
		addHeaderBtn:    newButton(fieldAddHeader, "Add Header"),
		removeHeaderBtn: newButton(fieldRemoveHeader, "Remove Last"),
		bodyEditor:      newAreaField(fieldBody, "Request body"),
		responseView:    viewport.New(80, 10),
	}
	m.engine = navigation.NewEngine(m.registry)

	m.filterInput = textinput.New()
	m.filterInput.Prompt = "filter> "
	m.filterInput.Placeholder = "JMESPath expression, e.g. items[?active].name"

	m.registry.Mount(pathRequestLine.Child(0), m.methodSelect)
	m.registry.Mount(pathRequestLine.Child(1), m.urlInput)
	m.registry.Mount(pathRequestLine.Child(2), m.sendBtn)
	m.registry.Mount(pathHeaderBtns.Child(0), m.addHeaderBtn)
	m.registry.Mount(pathHeaderBtns.Child(1), m.removeHeaderBtn)
	m.registry.Mount(pathBody, m.bodyEditor)
	m.setHeaderRows(nil)

	m.loadLastRequest()
	m.focusField(m.urlInput)
	m.updateResponseView()
	return m
}

// loadLastRequest fills the fields from the collection file. A corrupt file
// is logged and otherwise ignored.
func (m *Model) loadLastRequest() {
	if m.store == nil {
		return
	}
	spec, err := m.store.LoadLastRequest()
	if err != nil {
		if errors.Is(err, collection.ErrCorrupt) {
			m.log.WithError(err).Warn("ignoring corrupt collection file")
			m.setStatusMessage("Collection file is corrupt, starting with an empty request")
			return
		}
		m.log.WithError(err).Error("failed to load last request")
		m.setErrorMessage(fmt.Sprintf("Failed to load last request: %v", err))
		return
	}
	if spec == nil {
		return
	}

	m.applySpec(*spec)
	m.log.WithFields(logrus.Fields{
		"method": spec.Method,
		"url":    spec.URL,
		"file":   m.store.Path(),
	}).Info("loaded last request")
}

// applySpec copies a request into the fields
func (m *Model) applySpec(spec types.RequestSpec) {
	m.requestName = spec.Name
	m.methodSelect.SetValue(string(spec.Method))
	m.urlInput.SetValue(spec.URL)
	m.setHeaderRows(spec.Headers)
	m.bodyEditor.SetValue(spec.Body)
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case responseMsg:
		m.handleResponse(msg)

	case statusMsg:
		m.errorMsg = ""
		m.fullErrorMsg = ""
		m.setStatusMessage(string(msg))

	case errorMsg:
		m.setErrorMessage(string(msg))
	}

	return m, cmd
}

// handleResponse applies a dispatch result unless a newer send superseded it
func (m *Model) handleResponse(msg responseMsg) {
	fields := logrus.Fields{
		"seq":    msg.seq,
		"method": msg.spec.Method,
		"url":    msg.spec.URL,
	}
	if msg.result != nil {
		fields["duration_ms"] = msg.result.DurationMs
	}

	if msg.seq != m.requestSeq {
		m.log.WithFields(fields).WithField("latest", m.requestSeq).Debug("discarding stale response")
		return
	}

	m.loading = false
	m.response = msg.result
	m.responseView.GotoTop()

	if msg.result.OK() {
		fields["status"] = msg.result.StatusCode
		fields["truncated"] = msg.result.Truncated
		m.log.WithFields(fields).Info("request completed")
		m.errorMsg = ""
		m.fullErrorMsg = ""
		m.setStatusMessage("Request completed")
	} else {
		fields["kind"] = msg.result.Failure.Kind.String()
		m.log.WithFields(fields).WithField("error", msg.result.Failure.Message).Warn("request failed")
		errText := msg.result.Failure.Message
		if msg.result.Failure.Hint != "" {
			errText += " (" + msg.result.Failure.Hint + ")"
		}
		m.setErrorMessage(errText)
	}
	m.updateResponseView()
}

// focusField moves focus to f, blurring the previous field
func (m *Model) focusField(f navigation.Field) tea.Cmd {
	w, ok := f.(widget)
	if !ok {
		return nil
	}
	if m.focused != nil {
		m.focused.blur()
	}
	m.focused = w
	return w.focus()
}

// Helper methods for setting messages
func (m *Model) setStatusMessage(msg string) {
	m.fullStatusMsg = msg
	if len(msg) > MaxStatusLength {
		m.statusMsg = msg[:MaxStatusLength-3] + "..."
	} else {
		m.statusMsg = msg
	}
}

func (m *Model) setErrorMessage(msg string) {
	m.fullErrorMsg = msg
	if len(msg) > MaxStatusLength {
		m.errorMsg = msg[:MaxStatusLength-3] + "..."
	} else {
		m.errorMsg = msg
	}
}
