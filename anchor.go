package panel

// Anchor selects which point of a string or image lands on the given
// coordinates. The values match the LovyanGFX text datum.
type Anchor uint8

const (
	TopLeft        Anchor = 0
	TopCenter      Anchor = 1
	TopRight       Anchor = 2
	MiddleLeft     Anchor = 4
	MiddleCenter   Anchor = 5
	MiddleRight    Anchor = 6
	BottomLeft     Anchor = 8
	BottomCenter   Anchor = 9
	BottomRight    Anchor = 10
	BaselineLeft   Anchor = 16
	BaselineCenter Anchor = 17
	BaselineRight  Anchor = 18

	TopCentre      = TopCenter
	MiddleCentre   = MiddleCenter
	BottomCentre   = BottomCenter
	BaselineCentre = BaselineCenter
)

const (
	anchorCenter   Anchor = 1
	anchorRight    Anchor = 2
	anchorMiddle   Anchor = 4
	anchorBottom   Anchor = 8
	anchorBaseline Anchor = 16
)

// offsetX returns how far left of the anchor point a box of width w starts.
func (a Anchor) offsetX(w int32) int32 {
	switch {
	case a&anchorRight != 0:
		return w
	case a&anchorCenter != 0:
		return w / 2
	}
	return 0
}

// offsetY returns how far above the anchor point a box of height h
// starts. baseline is the distance from the top to the text baseline.
func (a Anchor) offsetY(h, baseline int32) int32 {
	switch {
	case a&anchorBaseline != 0:
		return baseline
	case a&anchorBottom != 0:
		return h
	case a&anchorMiddle != 0:
		return h / 2
	}
	return 0
}
