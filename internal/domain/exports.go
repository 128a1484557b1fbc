package domain

import (
	interfaces "bluechips/internal/domain/interfaces"
	types "bluechips/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ShareID    = types.ShareID
	ShareEntry = types.ShareEntry
	Share      = types.Share
	Allocation = types.Allocation
	Result     = types.Result
	Portion    = types.Portion
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Page          = interfaces.Page
	Evaluator     = interfaces.Evaluator
	SplitService  = interfaces.SplitService
	Allocator     = interfaces.Allocator
	Weight        = interfaces.Weight
	SplitRecorder = interfaces.SplitRecorder
)

// OutputSuffix is appended to a share id to find its output element.
const OutputSuffix = types.OutputSuffix

// Constructors re-exported for callers that only import domain.
var (
	ValidShare   = types.ValidShare
	InvalidShare = types.InvalidShare
)
