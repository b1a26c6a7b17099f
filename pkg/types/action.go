package types

import (
	"fmt"
	"strings"
)

// ActionKind tags the concrete type of an Action.
type ActionKind string

const (
	KindText      ActionKind = "text"
	KindSeparator ActionKind = "separator"
	KindFeed      ActionKind = "feed"
	KindBarcode   ActionKind = "barcode"
	KindImage     ActionKind = "image"
	KindTable     ActionKind = "table"
)

// Action is one queued print operation. Every action carries fully
// resolved render data, so executing it only talks to the backend.
type Action interface {
	// Kind returns the variant tag
	Kind() ActionKind

	// Execute performs the action against the backend
	Execute(b Backend) error

	// Description returns a human-readable description of the action
	Description() string

	isAction()
}

// TextAction emits pre-formatted lines, each exactly as wide as the
// column budget it was laid out for.
type TextAction struct {
	Lines []string
	Align HAlign
	Size  TextSize
}

func (a *TextAction) Kind() ActionKind { return KindText }

func (a *TextAction) Execute(b Backend) error {
	for i, line := range a.Lines {
		if err := b.EmitTextLine(line, a.Align, a.Size); err != nil {
			return fmt.Errorf("failed to emit line %d: %w", i, err)
		}
	}
	return nil
}

func (a *TextAction) Description() string {
	preview := ""
	if len(a.Lines) > 0 {
		preview = strings.TrimSpace(a.Lines[0])
	}
	return fmt.Sprintf("Text %q (%d line(s), %s, %s)", preview, len(a.Lines), a.Align, a.Size)
}

func (a *TextAction) isAction() {}

// SeparatorAction emits one full width line of a repeated rune.
type SeparatorAction struct {
	Line string
}

func (a *SeparatorAction) Kind() ActionKind { return KindSeparator }

func (a *SeparatorAction) Execute(b Backend) error {
	return b.EmitTextLine(a.Line, AlignLeft, SizeNormal)
}

func (a *SeparatorAction) Description() string {
	return fmt.Sprintf("Separator %q", a.Line)
}

func (a *SeparatorAction) isAction() {}

// FeedAction asks the backend for blank lines.
type FeedAction struct {
	Count int
}

func (a *FeedAction) Kind() ActionKind { return KindFeed }

func (a *FeedAction) Execute(b Backend) error {
	return b.FeedLines(a.Count)
}

func (a *FeedAction) Description() string {
	return fmt.Sprintf("Feed %d line(s)", a.Count)
}

func (a *FeedAction) isAction() {}

// BarcodeAction hands barcode data to the backend untouched.
type BarcodeAction struct {
	Data   string
	Config BarcodeConfig
}

func (a *BarcodeAction) Kind() ActionKind { return KindBarcode }

func (a *BarcodeAction) Execute(b Backend) error {
	return b.EmitBarcode(a.Data, a.Config)
}

func (a *BarcodeAction) Description() string {
	return fmt.Sprintf("Barcode %q (hri %s)", a.Data, a.Config.HRI)
}

func (a *BarcodeAction) isAction() {}

// ImageAction hands an image path to the backend untouched.
type ImageAction struct {
	Path   string
	Config ImageConfig
}

func (a *ImageAction) Kind() ActionKind { return KindImage }

func (a *ImageAction) Execute(b Backend) error {
	return b.EmitImage(a.Path, a.Config.Label, a.Config.Scale)
}

func (a *ImageAction) Description() string {
	return fmt.Sprintf("Image %s (%s)", a.Path, a.Config.Scale)
}

func (a *ImageAction) isAction() {}

// TableAction groups the primitive actions produced by one table.
type TableAction struct {
	Actions []Action
}

func (a *TableAction) Kind() ActionKind { return KindTable }

func (a *TableAction) Execute(b Backend) error {
	for _, action := range a.Actions {
		if err := action.Execute(b); err != nil {
			return err
		}
	}
	return nil
}

func (a *TableAction) Description() string {
	return fmt.Sprintf("Table (%d action(s))", len(a.Actions))
}

// Lines returns every text line of the table in output order; feeds are
// not included.
func (a *TableAction) Lines() []string {
	var lines []string
	for _, action := range a.Actions {
		switch v := action.(type) {
		case *TextAction:
			lines = append(lines, v.Lines...)
		case *SeparatorAction:
			lines = append(lines, v.Line)
		}
	}
	return lines
}

func (a *TableAction) isAction() {}
