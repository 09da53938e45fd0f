package http

import (
	"percept-srv/internal/history"
	"percept-srv/internal/model"
	"percept-srv/pkg/paginator"
	"percept-srv/pkg/response"
)

func (r listReq) toInput() history.ListSnapshotsInput {
	return history.ListSnapshotsInput{
		ProductName:   r.ProductName,
		PaginateQuery: r.PaginateQuery,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type listResp struct {
	Product   productResp                 `json:"product"`
	Snapshots []snapshotResp              `json:"snapshots"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type productResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt response.DateTime `json:"created_at"`
}

type snapshotResp struct {
	ID            string            `json:"id"`
	Overall       string            `json:"overall"`
	Positive      int               `json:"positive"`
	Negative      int               `json:"negative"`
	Neutral       int               `json:"neutral"`
	AverageScore  float64           `json:"average_score"`
	TotalAnalyzed int               `json:"total_analyzed"`
	Sources       []string          `json:"sources"`
	CreatedAt     response.DateTime `json:"created_at"`
}

func (h *handler) newListResp(output history.ListSnapshotsOutput) listResp {
	resp := listResp{
		Product: productResp{
			ID:        output.Product.ID,
			Name:      output.Product.Name,
			CreatedAt: response.DateTime(output.Product.CreatedAt),
		},
		Snapshots: make([]snapshotResp, len(output.Snapshots)),
		Paginator: output.Paginator.ToResponse(),
	}
	for i, snap := range output.Snapshots {
		resp.Snapshots[i] = h.newSnapshotResp(snap)
	}
	return resp
}

func (h *handler) newSnapshotResp(snap model.SentimentSnapshot) snapshotResp {
	sources := snap.Sources
	if sources == nil {
		sources = []string{}
	}
	return snapshotResp{
		ID:            snap.ID,
		Overall:       snap.Overall,
		Positive:      snap.Positive,
		Negative:      snap.Negative,
		Neutral:       snap.Neutral,
		AverageScore:  snap.AverageScore,
		TotalAnalyzed: snap.TotalAnalyzed,
		Sources:       sources,
		CreatedAt:     response.DateTime(snap.CreatedAt),
	}
}
