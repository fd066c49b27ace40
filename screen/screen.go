// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen.go
// Summary: Screen — the embeddable façade spec §6 describes: owns the
// primary and alternate ScreenBuffer, the viewport, the window-title
// stack, and the outbound callback set, and dispatches Commands to the
// buffer-level handlers in the other buffer_*.go files.
// Grounded on: apps/texelterm/parser/vterm.go's NewVTerm constructor and
// apps/texelterm/parser/vterm.go's ProcessCSI top-level dispatch,
// generalized into the single Command-tag switch spec §9 calls for.

package screen

// Callbacks groups every outbound hook Screen can call into the
// embedder (spec §6 "Outbound to embedder"). Every field is optional;
// a nil field is simply not called.
type Callbacks struct {
	Reply                     func(data []byte)
	OnWindowTitleChanged      func(title string)
	ResizeWindow              func(width, height int, inPixels bool)
	SetApplicationKeypadMode  func(on bool)
	UseApplicationCursorKeys  func(on bool)
	SetBracketedPaste         func(on bool)
	SetGenerateFocusEvents    func(on bool)
	SetMouseProtocol          func(protocol int, on bool)
	SetMouseTransport         func(transport int)
	SetCursorStyle            func(display, shape int)
	OnBufferChanged           func(active BufferType)
	Bell                      func()
	RequestDynamicColor       func(name string) (Color, bool)
	SetDynamicColor           func(name string, c Color)
	ResetDynamicColor         func(name string)
	Notify                    func(title, body string)
	OnCommands                func(batch []Command)
}

// Option configures a Screen at construction time (spec §6's
// "Configuration" design note; named after the teacher's functional
// option constructors).
type Option func(*Screen)

// WithMaxHistoryLines bounds the primary buffer's scrollback. The
// default, when this option is omitted, is unbounded.
func WithMaxHistoryLines(n int) Option {
	return func(s *Screen) { s.maxHistory = &n }
}

// WithColorProfile overrides the palette used to turn the embedder's
// answer to a dynamic-color query into the RGB reply.
func WithColorProfile(p ColorProfile) Option {
	return func(s *Screen) { s.profile = p }
}

// WithLogger installs a diagnostic sink for ignore-with-log conditions.
func WithLogger(l Logger) Option {
	return func(s *Screen) { s.logger = l }
}

// WithCallbacks installs the embedder hook set.
func WithCallbacks(cb Callbacks) Option {
	return func(s *Screen) { s.cb = cb }
}

// Screen is the core of a terminal emulator's state: a primary and an
// alternate grid, a viewport into the primary grid's scrollback, and
// the window chrome (title stack) that travels with the session rather
// than with either grid (spec §3, §6).
type Screen struct {
	Primary, Alternate *ScreenBuffer
	active             *ScreenBuffer
	activeType         BufferType

	scrollOffset int

	titleStack []string
	title      string

	maxHistory *int
	profile    ColorProfile
	logger     Logger
	cb         Callbacks

	batch []Command
}

// NewScreen constructs a Screen sized rows x columns, with both buffers
// freshly reset (spec §6).
func NewScreen(size WindowSize, opts ...Option) *Screen {
	s := &Screen{
		profile: DefaultColorProfile(),
		logger:  noopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Primary = newScreenBuffer(Main, size, s.maxHistory)
	s.Alternate = newScreenBuffer(Alternate, size, nil)
	s.active = s.Primary
	s.activeType = Main
	return s
}

// Size returns the current grid dimensions.
func (s *Screen) Size() WindowSize { return s.active.Size }

// ActiveBuffer reports which grid is presently displayed.
func (s *Screen) ActiveBuffer() BufferType { return s.activeType }

// Active exposes the currently displayed buffer, for renderers (spec §6
// Render/Screenshot use this).
func (s *Screen) Active() *ScreenBuffer { return s.active }

func (s *Screen) bufferByType(t BufferType) *ScreenBuffer {
	if t == Alternate {
		return s.Alternate
	}
	return s.Primary
}

// switchTo selects the active buffer, clearing the viewport (leaving
// scrollback only meaningfully addressable while Main is active) and
// notifying the embedder (spec §4.8: switching to the alternate buffer
// always also resets the viewport to live).
func (s *Screen) switchTo(t BufferType) {
	if s.activeType == t {
		return
	}
	s.activeType = t
	s.active = s.bufferByType(t)
	s.scrollOffset = 0
	if s.cb.OnBufferChanged != nil {
		s.cb.OnBufferChanged(t)
	}
}

// Apply executes one Command against the active buffer (spec §6). It
// is the single entry point vtparse's decoder (or any other Command
// producer) drives.
func (s *Screen) Apply(cmd Command) {
	b := s.active
	switch cmd.Kind {
	case AppendChar:
		b.AppendChar(cmd.Rune, cmd.Consecutive)
	case Bell:
		if s.cb.Bell != nil {
			s.cb.Bell()
		}
	case FullReset:
		s.resetHard()
	case SoftReset:
		s.resetSoft()
	case Linefeed:
		col := b.Cursor.Col
		if b.modes.has(LineFeedNewLine) {
			col = b.leftMarginOrOne()
		}
		b.Linefeed(col)
	case Backspace:
		if b.Cursor.Col > 1 {
			b.Cursor.Col--
			b.wrapPending = false
		}
	case CarriageReturn:
		b.Cursor.Col = b.leftMarginOrOne()
		b.wrapPending = false
	case Tab:
		b.tabForward(1)

	case CursorUp:
		b.cursorUp(orOne(cmd.N))
	case CursorDown:
		b.cursorDown(orOne(cmd.N))
	case CursorForward:
		b.cursorForward(orOne(cmd.N))
	case CursorBackward:
		b.cursorBackward(orOne(cmd.N))
	case CursorNextLine:
		b.cursorNextLine(orOne(cmd.N))
	case CursorPreviousLine:
		b.cursorPreviousLine(orOne(cmd.N))
	case CursorToColumn:
		b.cursorToColumn(orOne(cmd.N))
	case CursorToLine:
		b.cursorToLine(orOne(cmd.N))
	case CursorTo:
		b.cursorTo(cmd.Coord)
	case Index:
		b.index()
	case ReverseIndex:
		b.reverseIndex()
	case BackIndex:
		b.backIndex()
	case ForwardIndex:
		b.forwardIndex()
	case CursorBackwardTab:
		b.tabBackward(orOne(cmd.N))
	case CursorForwardTab:
		b.tabForward(orOne(cmd.N))

	case EraseCharacters:
		b.eraseCharacters(orOne(cmd.N))
	case ClearToEndOfLine:
		b.clearToEndOfLine()
	case ClearToBeginOfLine:
		b.clearToBeginOfLine()
	case ClearLine:
		b.clearLine()
	case ClearToEndOfScreen:
		b.clearToEndOfScreen()
	case ClearToBeginOfScreen:
		b.clearToBeginOfScreen()
	case ClearScreen:
		b.clearScreen()
	case ClearScrollbackBuffer:
		if b.savedLines != nil {
			b.savedLines.Clear()
		}
		s.scrollOffset = 0
	case ScreenAlignmentPattern:
		b.screenAlignmentPattern()

	case InsertCharacters:
		b.insertCharacters(orOne(cmd.N))
	case DeleteCharacters:
		b.deleteCharacters(orOne(cmd.N))
	case InsertLines:
		b.insertLines(orOne(cmd.N))
	case DeleteLines:
		b.deleteLines(orOne(cmd.N))
	case InsertColumns:
		b.insertColumns(orOne(cmd.N))
	case DeleteColumns:
		b.deleteColumns(orOne(cmd.N))

	case ScrollUp:
		b.ScrollUp(orOne(cmd.N), b.currentScrollRegion())
	case ScrollDown:
		b.ScrollDown(orOne(cmd.N), b.currentScrollRegion())

	case SetTopBottomMargin:
		b.setTopBottomMargin(cmd.Coord.Row, cmd.Coord.Col)
	case SetLeftRightMargin:
		b.setLeftRightMargin(cmd.Coord.Row, cmd.Coord.Col)

	case SetGraphicsRendition:
		b.setGraphicsRendition(cmd.Params)
	case SetUnderlineColor:
		b.rendition.UnderlineColor = cmd.Color

	case SetMode:
		s.setMode(cmd.Mode, cmd.RawMode, cmd.On)
	case RequestMode:
		s.requestMode(cmd.Mode, cmd.RawMode)

	case SaveCursor:
		b.saveCursor()
	case RestoreCursor:
		b.restoreCursor()

	case SetMark:
		s.SetMark()

	case HyperlinkCmd:
		if cmd.URI == "" && cmd.ID == "" {
			b.activeHyperlink = ""
		} else {
			b.activeHyperlink = b.hyperlinks.lookupOrInsert(cmd.ID, cmd.URI)
		}
	case DesignateCharset, SingleShiftSelect:
		s.logger.Debugf("vtscreen: charset designation %v ignored (no G0-G3 emulation)", cmd.Kind)
	case SetCursorStyle:
		if s.cb.SetCursorStyle != nil {
			s.cb.SetCursorStyle(cmd.CursorDisplay, cmd.CursorShape)
		}
	case SetTabStop:
		b.tabStops[b.Cursor.Col] = true
	case ClearTabStop:
		b.clearTabStop(cmd.N)
	case RequestTabStops:
		s.replyTabStops()

	case ChangeWindowTitle:
		s.title = cmd.Str
		if s.cb.OnWindowTitleChanged != nil {
			s.cb.OnWindowTitleChanged(cmd.Str)
		}
	case SaveWindowTitle:
		s.titleStack = append(s.titleStack, s.title)
	case RestoreWindowTitle:
		if n := len(s.titleStack); n > 0 {
			s.title = s.titleStack[n-1]
			s.titleStack = s.titleStack[:n-1]
			if s.cb.OnWindowTitleChanged != nil {
				s.cb.OnWindowTitleChanged(s.title)
			}
		}
	case ResizeWindow:
		if s.cb.ResizeWindow != nil {
			s.cb.ResizeWindow(cmd.Width, cmd.Height, cmd.InPixels)
		}

	case SendMouseEvents:
		if s.cb.SetMouseProtocol != nil {
			s.cb.SetMouseProtocol(cmd.MouseProtocol, cmd.On)
		}
		if cmd.MouseTransport != 0 && s.cb.SetMouseTransport != nil {
			s.cb.SetMouseTransport(cmd.MouseTransport)
		}
	case ApplicationKeypadMode:
		if s.cb.SetApplicationKeypadMode != nil {
			s.cb.SetApplicationKeypadMode(cmd.On)
		}

	case SetDynamicColor:
		if s.cb.SetDynamicColor != nil {
			s.cb.SetDynamicColor(cmd.ColorName, cmd.Color)
		}
	case RequestDynamicColor:
		s.replyDynamicColor(cmd.ColorName)
	case ResetDynamicColor:
		if s.cb.ResetDynamicColor != nil {
			s.cb.ResetDynamicColor(cmd.ColorName)
		}

	case Notify:
		if s.cb.Notify != nil {
			s.cb.Notify(cmd.Title, cmd.Content)
		}

	case DeviceStatusReport:
		s.replyOK()
	case ReportCursorPosition:
		s.replyCursorPosition(false)
	case ReportExtendedCursorPosition:
		s.replyCursorPosition(true)
	case SendDeviceAttributes:
		s.replyDeviceAttributes()
	case SendTerminalId:
		s.replyTerminalID()
	}

	b.verifyState()
	s.batch = append(s.batch, cmd)
}

// Flush hands every Command applied since the last Flush to
// Callbacks.OnCommands, for embedders that batch redraws per terminal
// write rather than per command (spec §6).
func (s *Screen) Flush() {
	if len(s.batch) == 0 {
		return
	}
	if s.cb.OnCommands != nil {
		s.cb.OnCommands(s.batch)
	}
	s.batch = s.batch[:0]
}

func orOne(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
