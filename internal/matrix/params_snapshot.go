package matrix

import "matrix-bg/internal/core"

// Parameters exposes the loop state for the debug overlay.
func (l *Loop) Parameters() core.ParameterSnapshot {
	if l == nil {
		return core.ParameterSnapshot{}
	}
	st := l.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("cols", "Columns", int64(st.Cols)),
				core.IntParam("rows", "Rows", int64(st.Rows)),
				core.FloatParam("cell_size", "Cell size", st.CellSize),
				core.FloatParam("flicker_rate", "Flicker rate", l.cfg.FlickerRate),
			},
		},
		{
			Name: "Hover",
			Params: []core.Parameter{
				core.FloatParam("glow_alpha", "Glow alpha", st.GlowAlpha),
				core.FloatParam("hover_radius", "Hover radius", st.HoverRadius),
			},
		},
		{
			Name: "Ripples",
			Params: []core.Parameter{
				core.IntParam("ripples", "Active", int64(st.Ripples)),
				core.IntParam("ripple_cap", "Cap", int64(l.ripples.Cap())),
				core.DurationParam("drag_interval", "Drag interval", l.cfg.DragInterval),
			},
		},
		{
			Name: "Loop",
			Params: []core.Parameter{
				core.IntParam("frames", "Frames", int64(st.Frames)),
				core.IntParam("seed", "Seed", l.cfg.Seed),
			},
		},
	}}
}
