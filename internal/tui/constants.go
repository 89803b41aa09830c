package tui

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the workbench

const (
	// Borders and padding
	BoxBorderWidth    = 2 // Width consumed by a rounded border (left + right)
	BoxPaddingWidth   = 2 // Horizontal padding inside a box
	BoxOverheadHeight = 2 // Top and bottom border lines

	// Request line
	MethodSelectWidth = 10 // "OPTIONS ▾" plus a space
	SendButtonWidth   = 9  // "[ Send ]" plus a space

	// Body editor
	BodyEditorHeight    = 6 // Visible lines of the body editor
	MinBodyEditorHeight = 2

	// Response panel
	MinResponseHeight   = 3 // Viewport never shrinks below this
	ResponseChromeLines = 2 // Tab bar + status line

	// Fixed lines outside the boxes: title and status bar
	TitleLines     = 1
	StatusBarLines = 1

	// Messages longer than this are cut in the status bar
	MaxStatusLength = 100
)
