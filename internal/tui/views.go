package tui

type View int

const (
	ViewBrowse View = iota
	ViewDetail
)
