package graphdb

import "testing"

func TestIsValidEdgeType(t *testing.T) {
	for _, valid := range []string{"PARENT_OF", "CONTINUES", "CALLS", "USES"} {
		if !isValidEdgeType(valid) {
			t.Errorf("expected %q to be a valid edge type", valid)
		}
	}
	for _, invalid := range []string{"", "parent_of", "OWNS", "CALLS "} {
		if isValidEdgeType(invalid) {
			t.Errorf("expected %q to be rejected as an edge type", invalid)
		}
	}
}
