package layout

// negotiation summarises what negotiate did to one axis.
type negotiation struct {
	// available minus the sum of preferred sizes before negotiation.
	error float32
	// expanding is the number of tracks that received surplus.
	expanding int
	// slack is the total room the tracks had to shrink.
	slack float32
	// overflow is the part of a deficit the tracks could not absorb.
	overflow float32
}

// negotiate reconciles the preferred sizes of tracks with the available
// space along one axis, updating tracks in place.
//
// Surplus is shared equally by the expanding tracks and is left unused when
// there are none. A deficit is taken from every track in proportion to its
// slack (preferred minus minimum); no track drops below its minimum or below
// zero. When the deficit exceeds the total slack every track ends at its
// minimum and the remainder is reported as overflow.
func negotiate(tracks []track, available float32) negotiation {
	var total float32
	for _, t := range tracks {
		total += t.preferred
	}
	n := negotiation{error: available - total}

	switch {
	case n.error > 0:
		for _, t := range tracks {
			if t.expand {
				n.expanding++
			}
		}
		if n.expanding == 0 {
			return n
		}
		share := n.error / float32(n.expanding)
		for i := range tracks {
			if tracks[i].expand {
				tracks[i].preferred += share
			}
		}

	case n.error < 0:
		deficit := -n.error
		for _, t := range tracks {
			n.slack += slackOf(t)
		}
		if n.slack <= 0 {
			n.overflow = deficit
			return n
		}
		for i := range tracks {
			s := slackOf(tracks[i])
			if s == 0 {
				continue
			}
			reduction := deficit * (s / n.slack)
			tracks[i].preferred = max(tracks[i].minimum, tracks[i].preferred-reduction, 0)
		}
		if deficit > n.slack {
			n.overflow = deficit - n.slack
		}
	}
	return n
}

// slackOf returns how far a track can shrink. Tracks whose preferred size is
// already below their minimum have none.
func slackOf(t track) float32 {
	return max(t.preferred-t.minimum, 0)
}
