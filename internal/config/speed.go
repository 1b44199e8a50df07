package config

// FallInterval returns the milliseconds per gravity step at level. Levels
// below the first step use the first interval.
func (s SpeedConfig) FallInterval(level int) int {
	if len(s.Levels) == 0 {
		return DefaultTetrisConfig().Speed.FallInterval(level)
	}
	interval := s.Levels[0].IntervalMS
	for _, step := range s.Levels {
		if level < step.From {
			break
		}
		interval = step.IntervalMS
	}
	return interval
}
