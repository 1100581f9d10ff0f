package scoring

type predictRequest struct {
	Features [][]float64 `json:"features"`
}

type predictResponse struct {
	Probability float64 `json:"probability"`
	Score       float64 `json:"score"`
}
