package render

// Screen is the cell sink the renderer draws into
// Implementations only write cells that changed since the last Show
type Screen interface {
	// SetCell stages one cell, x is the column and y the row
	SetCell(x, y int, c Cell)

	// Clear blanks the whole screen
	Clear()

	// Show makes staged cells visible
	Show()

	// Sync discards what the screen believes is displayed, used after a resize
	Sync()

	Size() (width, height int)
}
