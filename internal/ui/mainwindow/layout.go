package mainwindow

import "fyne.io/fyne/v2"

// headerLayout places the clock label on the left edge and the close
// button in the top right corner.
type headerLayout struct{}

func (layout *headerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	clock := objects[0]
	closeButton := objects[1]

	closeSize := closeButton.MinSize()
	closeButton.Move(fyne.NewPos(size.Width-closeSize.Width, 0))
	closeButton.Resize(closeSize)

	clockSize := clock.MinSize()
	clockY := (size.Height - clockSize.Height) / 2
	if clockY < 0 {
		clockY = 0
	}
	clockWidth := size.Width - closeSize.Width
	if clockWidth < clockSize.Width {
		clockWidth = clockSize.Width
	}
	clock.Move(fyne.NewPos(0, clockY))
	clock.Resize(fyne.NewSize(clockWidth, clockSize.Height))
}

func (layout *headerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	clockSize := objects[0].MinSize()
	closeSize := objects[1].MinSize()

	width := clockSize.Width + closeSize.Width
	height := clockSize.Height
	if closeSize.Height > height {
		height = closeSize.Height
	}
	return fyne.NewSize(width, height)
}

// paddedBodyLayout insets a single child from the window edges so the
// translucent background stays visible around the controls.
type paddedBodyLayout struct{}

const bodyPad = float32(10)

func (layout *paddedBodyLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 1 {
		return
	}
	width := size.Width - bodyPad*2
	height := size.Height - bodyPad*2
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	objects[0].Move(fyne.NewPos(bodyPad, bodyPad))
	objects[0].Resize(fyne.NewSize(width, height))
}

func (layout *paddedBodyLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 1 {
		return fyne.NewSize(0, 0)
	}
	childSize := objects[0].MinSize()
	return fyne.NewSize(childSize.Width+bodyPad*2, childSize.Height+bodyPad*2)
}
