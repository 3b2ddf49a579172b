package frame

import (
	"fmt"

	"github.com/1broseidon/popframe/host"
)

// DefaultParams returns the frame parameter set required for visual
// parity: a minimal, undecorated, non-focus-stealing child window with a
// 1px child border and no chrome of any kind.
func DefaultParams() host.FrameParams {
	return host.FrameParams{
		Title:            "",
		MinWidth:         0,
		MinHeight:        0,
		NoAcceptFocus:    true,
		NoFocusOnMap:     true,
		OuterBorderWidth: 0,
		ChildBorderWidth: 1,
		ScrollBars:       false,
		MenuBarLines:     0,
		ToolBarLines:     0,
		TabBarLines:      0,
		NoOtherFrame:     true,
		Unsplittable:     true,
		Undecorated:      true,
		LeftFringe:       0,
		RightFringe:      0,
		SkipSessionSave:  true,
		SuppressPointer:  true,
	}
}

// Override is one caller-supplied frame parameter override. Overrides
// are applied in order, last write per key wins.
type Override struct {
	Key   string
	Value any
}

// MergeParams applies overrides to base key by key. Unknown keys and
// mistyped values are construction-time programmer errors and are
// reported instead of recovered.
func MergeParams(base host.FrameParams, overrides []Override) (host.FrameParams, error) {
	merged := base
	for _, ov := range overrides {
		if err := applyOverride(&merged, ov); err != nil {
			return host.FrameParams{}, err
		}
	}
	return merged, nil
}

func applyOverride(p *host.FrameParams, ov Override) error {
	switch ov.Key {
	case "title":
		return setString(&p.Title, ov)
	case "min-width":
		return setInt(&p.MinWidth, ov)
	case "min-height":
		return setInt(&p.MinHeight, ov)
	case "no-accept-focus":
		return setBool(&p.NoAcceptFocus, ov)
	case "no-focus-on-map":
		return setBool(&p.NoFocusOnMap, ov)
	case "outer-border-width":
		return setInt(&p.OuterBorderWidth, ov)
	case "child-border-width":
		return setInt(&p.ChildBorderWidth, ov)
	case "scroll-bars":
		return setBool(&p.ScrollBars, ov)
	case "menu-bar-lines":
		return setInt(&p.MenuBarLines, ov)
	case "tool-bar-lines":
		return setInt(&p.ToolBarLines, ov)
	case "tab-bar-lines":
		return setInt(&p.TabBarLines, ov)
	case "no-other-frame":
		return setBool(&p.NoOtherFrame, ov)
	case "unsplittable":
		return setBool(&p.Unsplittable, ov)
	case "undecorated":
		return setBool(&p.Undecorated, ov)
	case "left-fringe":
		return setInt(&p.LeftFringe, ov)
	case "right-fringe":
		return setInt(&p.RightFringe, ov)
	case "skip-session-save":
		return setBool(&p.SkipSessionSave, ov)
	case "suppress-pointer":
		return setBool(&p.SuppressPointer, ov)
	default:
		return fmt.Errorf("unknown frame parameter %q", ov.Key)
	}
}

func setString(dst *string, ov Override) error {
	v, ok := ov.Value.(string)
	if !ok {
		return fmt.Errorf("frame parameter %q: expected string, got %T", ov.Key, ov.Value)
	}
	*dst = v
	return nil
}

func setInt(dst *int, ov Override) error {
	v, ok := ov.Value.(int)
	if !ok {
		return fmt.Errorf("frame parameter %q: expected int, got %T", ov.Key, ov.Value)
	}
	*dst = v
	return nil
}

func setBool(dst *bool, ov Override) error {
	v, ok := ov.Value.(bool)
	if !ok {
		return fmt.Errorf("frame parameter %q: expected bool, got %T", ov.Key, ov.Value)
	}
	*dst = v
	return nil
}

// DiffParams returns the overrides needed to bring live in line with
// target. Hosts leak global settings into freshly created child frames;
// the controller re-applies the difference after creation.
func DiffParams(live, target host.FrameParams) []Override {
	var diff []Override
	add := func(key string, changed bool, value any) {
		if changed {
			diff = append(diff, Override{Key: key, Value: value})
		}
	}

	add("title", live.Title != target.Title, target.Title)
	add("min-width", live.MinWidth != target.MinWidth, target.MinWidth)
	add("min-height", live.MinHeight != target.MinHeight, target.MinHeight)
	add("no-accept-focus", live.NoAcceptFocus != target.NoAcceptFocus, target.NoAcceptFocus)
	add("no-focus-on-map", live.NoFocusOnMap != target.NoFocusOnMap, target.NoFocusOnMap)
	add("outer-border-width", live.OuterBorderWidth != target.OuterBorderWidth, target.OuterBorderWidth)
	add("child-border-width", live.ChildBorderWidth != target.ChildBorderWidth, target.ChildBorderWidth)
	add("scroll-bars", live.ScrollBars != target.ScrollBars, target.ScrollBars)
	add("menu-bar-lines", live.MenuBarLines != target.MenuBarLines, target.MenuBarLines)
	add("tool-bar-lines", live.ToolBarLines != target.ToolBarLines, target.ToolBarLines)
	add("tab-bar-lines", live.TabBarLines != target.TabBarLines, target.TabBarLines)
	add("no-other-frame", live.NoOtherFrame != target.NoOtherFrame, target.NoOtherFrame)
	add("unsplittable", live.Unsplittable != target.Unsplittable, target.Unsplittable)
	add("undecorated", live.Undecorated != target.Undecorated, target.Undecorated)
	add("left-fringe", live.LeftFringe != target.LeftFringe, target.LeftFringe)
	add("right-fringe", live.RightFringe != target.RightFringe, target.RightFringe)
	add("skip-session-save", live.SkipSessionSave != target.SkipSessionSave, target.SkipSessionSave)
	add("suppress-pointer", live.SuppressPointer != target.SuppressPointer, target.SuppressPointer)

	return diff
}

// ContentLocals returns the buffer-local settings applied to content
// buffers: no decoration bands, truncated lines, no cursor, zero
// margins, read-only.
func ContentLocals() map[string]string {
	return map[string]string{
		"status-line":           "off",
		"header-line":           "off",
		"tab-line":              "off",
		"truncate-lines":        "on",
		"cursor":                "off",
		"cursor-highlight":      "off",
		"boundary-indicators":   "off",
		"whitespace-indicators": "off",
		"left-margin":           "0",
		"right-margin":          "0",
		"read-only":             "on",
	}
}
