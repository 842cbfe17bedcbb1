package plan

import "errors"

var (
	// ErrNoActions means the LLM text yielded zero actions
	ErrNoActions = errors.New("no actions recovered")
	// ErrMissingArgument means a line named an action but no block
	ErrMissingArgument = errors.New("missing block argument")
	// ErrBlockRange means an action references a block id outside [0, numBlocks)
	ErrBlockRange = errors.New("block id out of range")
)
