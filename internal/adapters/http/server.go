// Package http exposes a read-only introspection surface for a running
// tree: a JSON snapshot of node statuses, a health endpoint and Prometheus
// metrics.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/copse/pkg/domain"
)

// NodeSnapshot is one node's state in the /tree response.
type NodeSnapshot struct {
	Name     string            `json:"name"`
	Status   domain.NodeStatus `json:"status"`
	Message  string            `json:"message,omitempty"`
	Children []*NodeSnapshot   `json:"children,omitempty"`
}

// Snapshot walks a tree and captures its current state. Control nodes are
// walked through domain.ChildLister; leaves have no children.
func Snapshot(root domain.Node) *NodeSnapshot {
	snap := &NodeSnapshot{
		Name:    root.Name(),
		Status:  root.Status(),
		Message: root.ContingencyMessage(),
	}
	if lister, ok := root.(domain.ChildLister); ok {
		for _, ec := range lister.Children() {
			snap.Children = append(snap.Children, Snapshot(ec.Instance))
		}
	}
	return snap
}

// NewHandler creates the introspection HTTP handler for one tree.
func NewHandler(root domain.Node, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/tree", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(Snapshot(root)); err != nil {
			http.Error(w, "encode error", http.StatusInternalServerError)
		}
	})

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
