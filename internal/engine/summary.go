package engine

// #region summary

// Summary computes the read-only aggregate view of the session. It may be
// called at any time, any number of times, and never mutates state.
func (s *Session) Summary() Report {
	if len(s.events) == 0 {
		return Report{
			MeanDrift:   0.0,
			FinalStatus: StatusEmpty,
		}
	}

	var report Report
	report.EventsAnalyzed = len(s.events)

	var driftSum float64
	for _, e := range s.events {
		driftSum += e.Drift
		if e.Shock {
			report.Shocks++
		}
		if e.Circular {
			report.CircularityWarnings++
		}
		if e.HardLockTriggered {
			report.HardLocks++
		}
	}
	report.MeanDrift = driftSum / float64(len(s.events))

	finalX := s.events[len(s.events)-1].X
	report.FinalX = &finalX

	if report.HardLocks > 0 {
		report.FinalStatus = StatusLocked
	} else {
		report.FinalStatus = StatusActive
	}
	return report
}

// #endregion
