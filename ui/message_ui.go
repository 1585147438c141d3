package ui

import (
	"bytes"
	"strings"

	cfg "github.com/automoto/emucommon/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Hints shown under a message.
const (
	HintWait     = "Please wait..."
	HintContinue = "Press a button to continue."
)

// MessageUI holds the ebitenui interface of the blocking message screen
type MessageUI struct {
	UI *ebitenui.UI

	hintLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMessageUI lays out title and message, one label per line of message.
func NewMessageUI(title, message string) *MessageUI {
	mui := &MessageUI{}
	mui.loadFonts()
	mui.buildUI(title, message)
	return mui
}

func (mui *MessageUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (mui *MessageUI) buildUI(title, message string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Message.BoxColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Message.BoxPadding)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Message.BoxWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	if title != "" {
		box.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(title, &mui.titleFace, &widget.LabelColor{
				Idle: cfg.Menu.TitleColor,
			}),
		))
	}
	for _, line := range strings.Split(message, "\n") {
		box.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(line, &mui.normalFace, &widget.LabelColor{
				Idle: cfg.Message.TextColor,
			}),
		))
	}

	mui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text(HintWait, &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Message.HintColor,
		}),
	)
	box.AddChild(mui.hintLabel)

	rootContainer.AddChild(box)
	mui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetHint replaces the line under the message.
func (mui *MessageUI) SetHint(hint string) {
	mui.hintLabel.Label = hint
}

// Update calls the UI's Update method
func (mui *MessageUI) Update() {
	mui.UI.Update()
}
