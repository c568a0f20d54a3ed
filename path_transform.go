package rast

// Transform applies an affine transformation to the path in place.
//
// Absolute commands have their coordinate pairs fully transformed. Relative
// commands are displacements, so only the linear part of the matrix applies
// to them. Elliptical arc radii are scaled by the matrix's axis scales; arc
// endpoints transform like any other coordinate pair.
//
// If the path begins with a relative move it is promoted to an absolute one,
// so the translation component is not lost.
func (p *Path) Transform(m Matrix) {
	sx, sy := m.AxisScales()

	for i := range p.commands {
		c := &p.commands[i]
		kind := c.Kind

		if i == 0 && kind == CmdRMove {
			c.Kind = CmdMove
			kind = CmdMove
		}

		rel := kind.IsRelative()
		switch kind {
		case CmdMove, CmdRMove, CmdLine, CmdRLine:
			p.transformPair(m, c, 0, rel)
		case CmdHLine, CmdRHLine:
			if rel {
				c.Args[0] *= m.A
			} else {
				c.Args[0] = m.A*c.Args[0] + m.C
			}
		case CmdVLine, CmdRVLine:
			if rel {
				c.Args[0] *= m.E
			} else {
				c.Args[0] = m.E*c.Args[0] + m.F
			}
		case CmdCubic, CmdRCubic:
			p.transformPair(m, c, 0, rel)
			p.transformPair(m, c, 2, rel)
			p.transformPair(m, c, 4, rel)
		case CmdSmoothCubic, CmdRSmoothCubic, CmdQuad, CmdRQuad:
			p.transformPair(m, c, 0, rel)
			p.transformPair(m, c, 2, rel)
		case CmdSmoothQuad, CmdRSmoothQuad:
			p.transformPair(m, c, 0, rel)
		case CmdArc, CmdRArc:
			c.Args[0] *= sx
			c.Args[1] *= sy
			p.transformPair(m, c, 5, rel)
		case CmdClose:
		}
	}

	p.start = m.TransformPoint(p.start)
	p.at = m.TransformPoint(p.at)
}

// transformPair transforms the coordinate pair at args[i], args[i+1].
func (p *Path) transformPair(m Matrix, c *Command, i int, relative bool) {
	pt := Pt(c.Args[i], c.Args[i+1])
	if relative {
		pt = m.TransformVector(pt)
	} else {
		pt = m.TransformPoint(pt)
	}
	c.Args[i] = pt.X
	c.Args[i+1] = pt.Y
}
