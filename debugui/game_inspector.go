package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/render"
)

// GameInspector shows the state machine, counters and the board.
type GameInspector struct{}

func (gi *GameInspector) Render(snap game.Snapshot) {
	if !imgui.BeginV("Game State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Phase: %s", snap.Phase))
	imgui.Text(game.ScoreLabel(snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d", snap.LinesCleared))
	imgui.Text(fmt.Sprintf("Pieces: %d", snap.Pieces))

	if snap.Piece.Kind != game.KindNone {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Active: %s (%s) at %d,%d", snap.Piece.Kind, snap.Piece.Color, snap.Piece.Offset.X, snap.Piece.Offset.Y))
	}

	if imgui.TreeNodeStr("Board") {
		imgui.Text(render.String(snap))
		imgui.TreePop()
	}

	imgui.End()
}
