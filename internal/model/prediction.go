package model

import "errors"

// Prediction is the arg-max of one classifier output.
type Prediction struct {
	Label        string             `json:"label"`
	Score        float32            `json:"score"`
	Distribution map[string]float32 `json:"distribution"`
}

// Decide picks the highest scoring label from outputs, which is indexed like
// labels. On ties the lowest index wins. Extra outputs beyond the label count
// are ignored.
func Decide(labels []string, outputs []float32) (*Prediction, error) {
	n := len(labels)
	if len(outputs) < n {
		n = len(outputs)
	}
	if n == 0 {
		return nil, errors.New("classifier produced no scores")
	}

	maxIdx := 0
	maxVal := outputs[0]
	distribution := make(map[string]float32, n)

	for i := 0; i < n; i++ {
		val := outputs[i]
		distribution[labels[i]] = val
		if val > maxVal {
			maxVal = val
			maxIdx = i
		}
	}

	return &Prediction{
		Label:        labels[maxIdx],
		Score:        maxVal,
		Distribution: distribution,
	}, nil
}
