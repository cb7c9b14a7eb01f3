package deflection

import "fmt"

type BatchInput struct {
	Items []Input `json:"items"`
}

type BatchResult struct {
	Results []Result `json:"results"`
}

// CalculateBatch runs a set of load cases in one call. Any invalid case
// fails the whole batch so a broken row cannot hide in the output.
func CalculateBatch(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, fmt.Errorf("%w: no items", ErrInvalidInput)
	}
	out := BatchResult{Results: make([]Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := Calculate(item)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
