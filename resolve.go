package agentenv

// resolve combines all detector outputs into a single answer. Every
// detector runs exactly once; the first high-confidence result in
// registry order wins, then the first result of any confidence, then
// nil. Registry order is the tie-break between detectors matching at the
// same tier, so the answer is deterministic for a fixed environment and
// ancestor chain.
func resolve(dets []detector, env lookupEnv, ancestors lookupAncestors) *Result {
	results := make([]*Result, len(dets))
	for i, d := range dets {
		results[i] = d.detect(env, ancestors)
	}

	for _, r := range results {
		if r != nil && r.Confidence == ConfidenceHigh {
			return r
		}
	}
	for _, r := range results {
		if r != nil {
			return r
		}
	}
	return nil
}
