package flow

import "errors"

// ErrMinCutUnavailable is returned by MinCut/InMinCut when no MaxFlow or
// MaxFlowDinic call has run yet on this FlowNetwork.
var ErrMinCutUnavailable = errors.New("flow: no max-flow computation has run yet")

// MinCut returns the FlowEdges crossing a minimum s-t cut: the saturated
// (Flow == Capacity) arcs running from the set of vertices reachable from
// Source() in the residual graph left by the most recent MaxFlow or
// MaxFlowDinic call, to its complement. By the max-flow/min-cut theorem,
// the sum of Flow over the returned edges equals the max-flow value.
func (fn *FlowNetwork[W]) MinCut() ([]*FlowEdge[W], error) {
	if fn.lastReachable == nil {
		return nil, ErrMinCutUnavailable
	}
	var cut []*FlowEdge[W]
	for v := range fn.lastReachable {
		for _, e := range fn.residual[v] {
			if e.From() != v || fn.lastReachable[e.To()] {
				continue
			}
			if e.Flow() == e.Capacity() {
				cut = append(cut, e)
			}
		}
	}
	return cut, nil
}

// InMinCut reports whether v lies on the source side of the most recently
// computed minimum cut.
func (fn *FlowNetwork[W]) InMinCut(v int) (bool, error) {
	if fn.lastReachable == nil {
		return false, ErrMinCutUnavailable
	}
	return fn.lastReachable[v], nil
}
