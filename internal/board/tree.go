package board

import (
	"time"

	"github.com/Meng-Best/task-planning-system-sub001/internal/plan"
)

// OrderNode is one order with its tasks and the distinct product codes
// those tasks touch, in first-seen order.
type OrderNode struct {
	Code     string
	Name     string
	Start    time.Time
	End      time.Time
	Tasks    []plan.Task
	Products []string
}

// OrderTree builds one node per order plan and assigns every task to its
// node by order code. Tasks whose order code has no matching order plan
// are dropped, and best_order_sequence codes absent from the payload are
// skipped; both are integrity gaps the scheduling backend is expected to
// avoid. When best_order_sequence is non-empty the result is filtered
// and reordered to match it, otherwise order-plan order is kept. The
// result never contains duplicate order codes.
func (b Board) OrderTree() []OrderNode {
	var codes []string
	nodes := make(map[string]*OrderNode)

	for _, op := range b.payload.OrderPlans {
		if _, ok := nodes[op.Code]; ok {
			continue
		}
		codes = append(codes, op.Code)
		nodes[op.Code] = &OrderNode{
			Code:  op.Code,
			Name:  op.Name,
			Start: op.Start.Time,
			End:   op.End.Time,
		}
	}

	for _, t := range b.payload.Tasks {
		node, ok := nodes[t.OrderCode]
		if !ok {
			continue
		}
		node.Tasks = append(node.Tasks, t)
		if t.ProductCode != "" && !contains(node.Products, t.ProductCode) {
			node.Products = append(node.Products, t.ProductCode)
		}
	}

	if len(b.payload.BestOrderSequence) > 0 {
		codes = codes[:0]
		seen := make(map[string]bool)
		for _, code := range b.payload.BestOrderSequence {
			if nodes[code] != nil && !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}

	tree := make([]OrderNode, 0, len(codes))
	for _, code := range codes {
		tree = append(tree, *nodes[code])
	}
	return tree
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
