package canvas

import (
	"errors"

	"github.com/gogpu/canvas/region"
)

// commandType identifies the type of a recorded command.
type commandType uint8

const (
	// State commands
	cmdSave commandType = iota
	cmdRestore
	cmdRestoreToCount
	cmdSaveLayer
	cmdTranslate
	cmdRotate
	cmdScale
	cmdSkew
	cmdSetMatrix
	cmdConcatMatrix
	cmdClipRect
	cmdClipPath
	cmdClipRegion

	// Paint-adjunct commands
	cmdSetupShader
	cmdResetShader
	cmdSetupColorFilter
	cmdResetColorFilter
	cmdSetupShadow
	cmdResetShadow
	cmdSetupPaintFilter
	cmdResetPaintFilter

	// Draw commands
	cmdDrawColor
	cmdDrawRect
	cmdDrawRects
	cmdDrawRoundRect
	cmdDrawCircle
	cmdDrawOval
	cmdDrawArc
	cmdDrawPath
	cmdDrawLines
	cmdDrawPoints
	cmdDrawBitmap
	cmdDrawBitmapMatrix
	cmdDrawBitmapRect
	cmdDrawBitmapMesh
	cmdDrawPatch
	cmdDrawText
	cmdDrawPosText
	cmdDrawTextOnPath
	cmdDrawLayer
	cmdDrawDisplayList
)

// commandTypeNames maps commandType values to their string representation.
var commandTypeNames = [...]string{
	cmdSave:             "Save",
	cmdRestore:          "Restore",
	cmdRestoreToCount:   "RestoreToCount",
	cmdSaveLayer:        "SaveLayer",
	cmdTranslate:        "Translate",
	cmdRotate:           "Rotate",
	cmdScale:            "Scale",
	cmdSkew:             "Skew",
	cmdSetMatrix:        "SetMatrix",
	cmdConcatMatrix:     "ConcatMatrix",
	cmdClipRect:         "ClipRect",
	cmdClipPath:         "ClipPath",
	cmdClipRegion:       "ClipRegion",
	cmdSetupShader:      "SetupShader",
	cmdResetShader:      "ResetShader",
	cmdSetupColorFilter: "SetupColorFilter",
	cmdResetColorFilter: "ResetColorFilter",
	cmdSetupShadow:      "SetupShadow",
	cmdResetShadow:      "ResetShadow",
	cmdSetupPaintFilter: "SetupPaintFilter",
	cmdResetPaintFilter: "ResetPaintFilter",
	cmdDrawColor:        "DrawColor",
	cmdDrawRect:         "DrawRect",
	cmdDrawRects:        "DrawRects",
	cmdDrawRoundRect:    "DrawRoundRect",
	cmdDrawCircle:       "DrawCircle",
	cmdDrawOval:         "DrawOval",
	cmdDrawArc:          "DrawArc",
	cmdDrawPath:         "DrawPath",
	cmdDrawLines:        "DrawLines",
	cmdDrawPoints:       "DrawPoints",
	cmdDrawBitmap:       "DrawBitmap",
	cmdDrawBitmapMatrix: "DrawBitmapMatrix",
	cmdDrawBitmapRect:   "DrawBitmapRect",
	cmdDrawBitmapMesh:   "DrawBitmapMesh",
	cmdDrawPatch:        "DrawPatch",
	cmdDrawText:         "DrawText",
	cmdDrawPosText:      "DrawPosText",
	cmdDrawTextOnPath:   "DrawTextOnPath",
	cmdDrawLayer:        "DrawLayer",
	cmdDrawDisplayList:  "DrawDisplayList",
}

// String returns the string representation of a commandType.
func (c commandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// command is one recorded operation. apply re-issues it against a live
// renderer; base is the replay target's entry save count above the
// recording baseline, added to recorded restore markers so the list
// unwinds only states it pushed itself.
type command interface {
	// Type returns the commandType for this command.
	Type() commandType

	apply(r Renderer, base int) Status
}

// replayStatus maps a replayed state operation's error onto a Status.
// An illegal-state error stops the replay; anything else is logged and
// playback continues, matching the permissive immediate-mode behavior.
func replayStatus(t commandType, err error) Status {
	switch {
	case err == nil:
		return StatusDone
	case errors.Is(err, ErrIllegalState):
		return StatusIllegalState
	default:
		Logger().Warn("canvas: replayed state op failed", "op", t.String(), "err", err)
		return StatusDone
	}
}

// --------------------------------------------------------------------------
// State commands
// --------------------------------------------------------------------------

type saveCommand struct {
	flags SaveFlags
}

func (saveCommand) Type() commandType { return cmdSave }

func (c saveCommand) apply(r Renderer, _ int) Status {
	_, err := r.Save(c.flags)
	return replayStatus(cmdSave, err)
}

type restoreCommand struct{}

func (restoreCommand) Type() commandType { return cmdRestore }

func (restoreCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdRestore, r.Restore())
}

// restoreToCountCommand stores the marker as recorded, relative to the
// recording baseline of 1; apply rebases it onto the replay target.
type restoreToCountCommand struct {
	count int
}

func (restoreToCountCommand) Type() commandType { return cmdRestoreToCount }

func (c restoreToCountCommand) apply(r Renderer, base int) Status {
	return replayStatus(cmdRestoreToCount, r.RestoreToCount(base+c.count))
}

type saveLayerCommand struct {
	bounds Rect
	alpha  uint8
	mode   BlendMode
	flags  SaveFlags
}

func (saveLayerCommand) Type() commandType { return cmdSaveLayer }

func (c saveLayerCommand) apply(r Renderer, _ int) Status {
	_, err := r.SaveLayer(c.bounds, c.alpha, c.mode, c.flags)
	return replayStatus(cmdSaveLayer, err)
}

type translateCommand struct {
	dx, dy float32
}

func (translateCommand) Type() commandType { return cmdTranslate }

func (c translateCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdTranslate, r.Translate(c.dx, c.dy))
}

type rotateCommand struct {
	radians float32
}

func (rotateCommand) Type() commandType { return cmdRotate }

func (c rotateCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdRotate, r.Rotate(c.radians))
}

type scaleCommand struct {
	sx, sy float32
}

func (scaleCommand) Type() commandType { return cmdScale }

func (c scaleCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdScale, r.Scale(c.sx, c.sy))
}

type skewCommand struct {
	kx, ky float32
}

func (skewCommand) Type() commandType { return cmdSkew }

func (c skewCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdSkew, r.Skew(c.kx, c.ky))
}

// setMatrixCommand replaces the replay target's transform outright, like
// the live call. A list meant to compose under a parent transform should
// be recorded with concats instead.
type setMatrixCommand struct {
	m Matrix
}

func (setMatrixCommand) Type() commandType { return cmdSetMatrix }

func (c setMatrixCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdSetMatrix, r.SetMatrix(c.m))
}

type concatMatrixCommand struct {
	m Matrix
}

func (concatMatrixCommand) Type() commandType { return cmdConcatMatrix }

func (c concatMatrixCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdConcatMatrix, r.ConcatMatrix(c.m))
}

type clipRectCommand struct {
	rect Rect
	op   ClipOp
}

func (clipRectCommand) Type() commandType { return cmdClipRect }

func (c clipRectCommand) apply(r Renderer, _ int) Status {
	_, err := r.ClipRect(c.rect, c.op)
	return replayStatus(cmdClipRect, err)
}

type clipPathCommand struct {
	path *Path
	op   ClipOp
}

func (clipPathCommand) Type() commandType { return cmdClipPath }

func (c clipPathCommand) apply(r Renderer, _ int) Status {
	_, err := r.ClipPath(c.path, c.op)
	return replayStatus(cmdClipPath, err)
}

type clipRegionCommand struct {
	rgn region.Region
	op  ClipOp
}

func (clipRegionCommand) Type() commandType { return cmdClipRegion }

func (c clipRegionCommand) apply(r Renderer, _ int) Status {
	_, err := r.ClipRegion(c.rgn, c.op)
	return replayStatus(cmdClipRegion, err)
}

// --------------------------------------------------------------------------
// Paint-adjunct commands
// --------------------------------------------------------------------------

type setupShaderCommand struct {
	shader Shader
}

func (setupShaderCommand) Type() commandType { return cmdSetupShader }

func (c setupShaderCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdSetupShader, r.SetupShader(c.shader))
}

type resetShaderCommand struct{}

func (resetShaderCommand) Type() commandType { return cmdResetShader }

func (resetShaderCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdResetShader, r.ResetShader())
}

type setupColorFilterCommand struct {
	filter ColorFilter
}

func (setupColorFilterCommand) Type() commandType { return cmdSetupColorFilter }

func (c setupColorFilterCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdSetupColorFilter, r.SetupColorFilter(c.filter))
}

type resetColorFilterCommand struct{}

func (resetColorFilterCommand) Type() commandType { return cmdResetColorFilter }

func (resetColorFilterCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdResetColorFilter, r.ResetColorFilter())
}

type setupShadowCommand struct {
	radius float32
	dx, dy float32
	color  Color
}

func (setupShadowCommand) Type() commandType { return cmdSetupShadow }

func (c setupShadowCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdSetupShadow, r.SetupShadow(c.radius, c.dx, c.dy, c.color))
}

type resetShadowCommand struct{}

func (resetShadowCommand) Type() commandType { return cmdResetShadow }

func (resetShadowCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdResetShadow, r.ResetShadow())
}

type setupPaintFilterCommand struct {
	clear, set PaintFlags
}

func (setupPaintFilterCommand) Type() commandType { return cmdSetupPaintFilter }

func (c setupPaintFilterCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdSetupPaintFilter, r.SetupPaintFilter(c.clear, c.set))
}

type resetPaintFilterCommand struct{}

func (resetPaintFilterCommand) Type() commandType { return cmdResetPaintFilter }

func (resetPaintFilterCommand) apply(r Renderer, _ int) Status {
	return replayStatus(cmdResetPaintFilter, r.ResetPaintFilter())
}

// --------------------------------------------------------------------------
// Draw commands
// --------------------------------------------------------------------------

type drawColorCommand struct {
	color Color
	mode  BlendMode
}

func (drawColorCommand) Type() commandType { return cmdDrawColor }

func (c drawColorCommand) apply(r Renderer, _ int) Status {
	return r.DrawColor(c.color, c.mode)
}

type drawRectCommand struct {
	rect  Rect
	paint *Paint
}

func (drawRectCommand) Type() commandType { return cmdDrawRect }

func (c drawRectCommand) apply(r Renderer, _ int) Status {
	return r.DrawRect(c.rect, c.paint)
}

type drawRectsCommand struct {
	rects []Rect
	paint *Paint
}

func (drawRectsCommand) Type() commandType { return cmdDrawRects }

func (c drawRectsCommand) apply(r Renderer, _ int) Status {
	return r.DrawRects(c.rects, c.paint)
}

type drawRoundRectCommand struct {
	rect   Rect
	rx, ry float32
	paint  *Paint
}

func (drawRoundRectCommand) Type() commandType { return cmdDrawRoundRect }

func (c drawRoundRectCommand) apply(r Renderer, _ int) Status {
	return r.DrawRoundRect(c.rect, c.rx, c.ry, c.paint)
}

type drawCircleCommand struct {
	cx, cy, radius float32
	paint          *Paint
}

func (drawCircleCommand) Type() commandType { return cmdDrawCircle }

func (c drawCircleCommand) apply(r Renderer, _ int) Status {
	return r.DrawCircle(c.cx, c.cy, c.radius, c.paint)
}

type drawOvalCommand struct {
	rect  Rect
	paint *Paint
}

func (drawOvalCommand) Type() commandType { return cmdDrawOval }

func (c drawOvalCommand) apply(r Renderer, _ int) Status {
	return r.DrawOval(c.rect, c.paint)
}

type drawArcCommand struct {
	rect         Rect
	start, sweep float32
	useCenter    bool
	paint        *Paint
}

func (drawArcCommand) Type() commandType { return cmdDrawArc }

func (c drawArcCommand) apply(r Renderer, _ int) Status {
	return r.DrawArc(c.rect, c.start, c.sweep, c.useCenter, c.paint)
}

type drawPathCommand struct {
	path  *Path
	paint *Paint
}

func (drawPathCommand) Type() commandType { return cmdDrawPath }

func (c drawPathCommand) apply(r Renderer, _ int) Status {
	return r.DrawPath(c.path, c.paint)
}

type drawLinesCommand struct {
	pts   []float32
	paint *Paint
}

func (drawLinesCommand) Type() commandType { return cmdDrawLines }

func (c drawLinesCommand) apply(r Renderer, _ int) Status {
	return r.DrawLines(c.pts, c.paint)
}

type drawPointsCommand struct {
	pts   []float32
	paint *Paint
}

func (drawPointsCommand) Type() commandType { return cmdDrawPoints }

func (c drawPointsCommand) apply(r Renderer, _ int) Status {
	return r.DrawPoints(c.pts, c.paint)
}

type drawBitmapCommand struct {
	bitmap *Bitmap
	x, y   float32
	paint  *Paint
}

func (drawBitmapCommand) Type() commandType { return cmdDrawBitmap }

func (c drawBitmapCommand) apply(r Renderer, _ int) Status {
	return r.DrawBitmap(c.bitmap, c.x, c.y, c.paint)
}

type drawBitmapMatrixCommand struct {
	bitmap *Bitmap
	m      Matrix
	paint  *Paint
}

func (drawBitmapMatrixCommand) Type() commandType { return cmdDrawBitmapMatrix }

func (c drawBitmapMatrixCommand) apply(r Renderer, _ int) Status {
	return r.DrawBitmapMatrix(c.bitmap, c.m, c.paint)
}

type drawBitmapRectCommand struct {
	bitmap   *Bitmap
	src, dst Rect
	paint    *Paint
}

func (drawBitmapRectCommand) Type() commandType { return cmdDrawBitmapRect }

func (c drawBitmapRectCommand) apply(r Renderer, _ int) Status {
	return r.DrawBitmapRect(c.bitmap, c.src, c.dst, c.paint)
}

type drawBitmapMeshCommand struct {
	bitmap       *Bitmap
	meshW, meshH int
	verts        []float32
	colors       []Color
	paint        *Paint
}

func (drawBitmapMeshCommand) Type() commandType { return cmdDrawBitmapMesh }

func (c drawBitmapMeshCommand) apply(r Renderer, _ int) Status {
	return r.DrawBitmapMesh(c.bitmap, c.meshW, c.meshH, c.verts, c.colors, c.paint)
}

type drawPatchCommand struct {
	bitmap *Bitmap
	patch  Patch
	dst    Rect
	paint  *Paint
}

func (drawPatchCommand) Type() commandType { return cmdDrawPatch }

func (c drawPatchCommand) apply(r Renderer, _ int) Status {
	return r.DrawPatch(c.bitmap, c.patch, c.dst, c.paint)
}

// drawTextCommand carries the submission-time DrawOpMode, so a run
// recorded as deferred joins the replay target's batch.
type drawTextCommand struct {
	run   *TextRun
	x, y  float32
	paint *Paint
	mode  DrawOpMode
}

func (drawTextCommand) Type() commandType { return cmdDrawText }

func (c drawTextCommand) apply(r Renderer, _ int) Status {
	return r.DrawText(c.run, c.x, c.y, c.paint, c.mode)
}

type drawPosTextCommand struct {
	run   *TextRun
	paint *Paint
}

func (drawPosTextCommand) Type() commandType { return cmdDrawPosText }

func (c drawPosTextCommand) apply(r Renderer, _ int) Status {
	return r.DrawPosText(c.run, c.paint)
}

type drawTextOnPathCommand struct {
	run              *TextRun
	path             *Path
	hOffset, vOffset float32
	paint            *Paint
}

func (drawTextOnPathCommand) Type() commandType { return cmdDrawTextOnPath }

func (c drawTextOnPathCommand) apply(r Renderer, _ int) Status {
	return r.DrawTextOnPath(c.run, c.path, c.hOffset, c.vOffset, c.paint)
}

type drawLayerCommand struct {
	layer *Layer
	x, y  float32
	paint *Paint
}

func (drawLayerCommand) Type() commandType { return cmdDrawLayer }

func (c drawLayerCommand) apply(r Renderer, _ int) Status {
	return r.DrawLayer(c.layer, c.x, c.y, c.paint)
}

type drawDisplayListCommand struct {
	list  DisplayList
	flags ReplayFlags
}

func (drawDisplayListCommand) Type() commandType { return cmdDrawDisplayList }

func (c drawDisplayListCommand) apply(r Renderer, _ int) Status {
	_, st := r.DrawDisplayList(c.list, c.flags)
	return st
}
