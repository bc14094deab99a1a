package predictor

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is the on-disk export of a trained decision-tree regressor plus the
// label encoders it was fitted with. The node layout follows the usual
// flattened-tree export: each node points at its children by index, leaves
// carry the predicted value.
type Artifact struct {
	ModelVersion string `json:"model_version"`
	Encoders     struct {
		Gender    []string `json:"gender"`
		Education []string `json:"education"`
		Paud      []string `json:"paud"`
	} `json:"encoders"`
	Tree struct {
		Nodes []TreeNode `json:"nodes"`
	} `json:"tree"`
}

// TreeNode is one node of the flattened regression tree. Feature < 0 marks a
// leaf; internal nodes route to Left when features[Feature] <= Threshold.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// TreeRegressor walks a flattened regression tree.
type TreeRegressor struct {
	nodes []TreeNode
}

func NewTreeRegressor(nodes []TreeNode) (*TreeRegressor, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("tree has no nodes")
	}
	for i, n := range nodes {
		if n.Feature < 0 {
			continue
		}
		if n.Left < 0 || n.Left >= len(nodes) || n.Right < 0 || n.Right >= len(nodes) {
			return nil, fmt.Errorf("node %d: child index out of range", i)
		}
		if n.Left == i || n.Right == i {
			return nil, fmt.Errorf("node %d: child points at itself", i)
		}
	}
	return &TreeRegressor{nodes: nodes}, nil
}

func (t *TreeRegressor) Predict(features []float64) float64 {
	i := 0
	// Walk is bounded by the node count so a malformed cycle cannot hang.
	for steps := 0; steps <= len(t.nodes); steps++ {
		n := t.nodes[i]
		if n.Feature < 0 || n.Feature >= len(features) {
			return n.Value
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return t.nodes[i].Value
}

// LoadModel reads a model artifact from disk. A missing file is returned
// as-is (os.IsNotExist) so the caller can choose permanent fallback mode;
// any other failure means the artifact is unusable.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}
	if len(a.Encoders.Gender) == 0 || len(a.Encoders.Education) == 0 || len(a.Encoders.Paud) == 0 {
		return nil, fmt.Errorf("model artifact %s: missing encoder classes", path)
	}

	tree, err := NewTreeRegressor(a.Tree.Nodes)
	if err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}

	return NewModel(
		a.ModelVersion,
		tree,
		NewLabelEncoder(a.Encoders.Gender),
		NewLabelEncoder(a.Encoders.Education),
		NewLabelEncoder(a.Encoders.Paud),
	), nil
}
