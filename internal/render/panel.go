package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/burtbyproxy/gridtactics/internal/game"
)

// ErrPanelClosed is returned when copying from a closed panel.
var ErrPanelClosed = errors.New("detail panel is closed")

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Panel is the unit detail panel. It holds a snapshot of the unit it was
// opened for until it is closed or opened for another unit.
type Panel struct {
	open   bool
	unit   game.UnitView
	logger *zap.SugaredLogger
}

// NewPanel creates a closed panel. A nil logger discards output.
func NewPanel(logger *zap.SugaredLogger) *Panel {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Panel{logger: logger}
}

// Open shows u.
func (p *Panel) Open(u game.UnitView) {
	p.open = true
	p.unit = u
	p.logger.Debugw("panel open", "unit", u.ID)
}

// Close hides the panel.
func (p *Panel) Close() {
	if p.open {
		p.logger.Debugw("panel close", "unit", p.unit.ID)
	}
	p.open = false
}

// IsOpen reports whether the panel is showing a unit.
func (p *Panel) IsOpen() bool { return p.open }

// Unit returns the unit shown, if open.
func (p *Panel) Unit() (game.UnitView, bool) {
	return p.unit, p.open
}

// Lines returns the panel body.
func (p *Panel) Lines() []string {
	if !p.open {
		return nil
	}
	c := p.unit.Char
	return []string{
		c.Name,
		"avatar " + c.Avatar,
		fmt.Sprintf("HP %d/%d", c.HP.Left, c.HP.Total),
	}
}

// Text returns the panel body as one string.
func (p *Panel) Text() string {
	return strings.Join(p.Lines(), "\n")
}

// CopyToClipboard copies the panel text to the system clipboard.
func (p *Panel) CopyToClipboard() error {
	if !p.open {
		return ErrPanelClosed
	}
	if err := writeClipboard(p.Text()); err != nil {
		return fmt.Errorf("copy unit %d: %w", p.unit.ID, err)
	}
	return nil
}

// Draw renders the panel into buf at (x, y) with width w.
func (p *Panel) Draw(buf *CellBuffer, x, y, w int) {
	const h = 7
	buf.Fill(x, y, w, h, blank)
	buf.Box(x, y, w, h, ColorLightGray)
	buf.WriteString(x+2, y, " UNIT ", ColorWhite, ColorBlack)
	if !p.open {
		buf.WriteString(x+2, y+2, "no unit", ColorDarkGray, ColorBlack)
		return
	}
	lines := p.Lines()
	buf.WriteString(x+2, y+2, clip(lines[0], w-4), UnitColor(p.unit.ID), ColorBlack)
	buf.WriteString(x+2, y+3, clip(lines[1], w-4), ColorLightGray, ColorBlack)
	buf.WriteString(x+2, y+4, clip(lines[2], w-4), hpColor(p.unit.Char.HP), ColorBlack)
}

func hpColor(hp game.HP) uint8 {
	switch {
	case hp.Total <= 0:
		return ColorLightGray
	case hp.Left*3 <= hp.Total:
		return ColorLightRed
	case hp.Left*3 <= hp.Total*2:
		return ColorYellow
	default:
		return ColorLightGreen
	}
}

func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
