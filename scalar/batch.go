package scalar

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/zkn/types"
	"git.gammaspectra.live/P2Pool/zkn/utils"
)

// EvaluateBatch evaluates independent requests concurrently, storing each result at the index of its request.
// routines <= 0 uses one routine per CPU. The first failing request aborts the batch.
func (c *Core) EvaluateBatch(requests []types.Request, results []types.Word, routines int) error {
	if len(results) < len(requests) {
		return utils.ErrorfNoEscape("results too short: have %d, want %d", len(results), len(requests))
	}

	return utils.SplitWork(routines, uint64(len(requests)), func(workIndex uint64, _ int) error {
		r, err := c.Evaluate(requests[workIndex])
		if err != nil {
			return fmt.Errorf("request %d: %w", workIndex, err)
		}
		results[workIndex] = r
		return nil
	})
}
