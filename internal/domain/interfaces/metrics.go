package interfaces

import (
	"time"

	domaintypes "bluechips/internal/domain/types"
)

// SplitRecorder receives one observation per completed split pass.
type SplitRecorder interface {
	RecordSplit(result domaintypes.Result, elapsed time.Duration)
}
