package forecast

import "github.com/go-kul-anand/Kovai-co-timeseries/timeseries"

// TrainFraction is the share of each route's history used for fitting;
// the remainder is the backtest window.
const TrainFraction = 0.8

// Split is a chronological train/test partition of one route series.
type Split struct {
	Train *timeseries.Series
	Test  *timeseries.Series
}

// ChronologicalSplit partitions a series at floor(TrainFraction * N).
// Time order is preserved and the parts never overlap; there is no
// shuffling, as the test window must follow the training window.
// For very short series the test part may be empty.
func ChronologicalSplit(s *timeseries.Series) Split {
	k := int(float64(s.Len()) * TrainFraction)
	return Split{
		Train: s.Slice(0, k),
		Test:  s.Slice(k, s.Len()),
	}
}
