package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okorolenko/semantic-audit/internal/core/domain"
)

type analyzeDocumentPayload struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// use_consistency_check is a pointer so an absent field defaults to true
// while an explicit false still disables the capability.
type analyzeRequestPayload struct {
	Documents           []analyzeDocumentPayload `json:"documents"`
	CompanySize         int                      `json:"company_size"`
	UseConsistencyCheck *bool                    `json:"use_consistency_check"`
}

func (rt *Router) analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var payload analyzeRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if len(payload.Documents) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "documents are required"})
		return
	}

	useCheck := true
	if payload.UseConsistencyCheck != nil {
		useCheck = *payload.UseConsistencyCheck
	}

	documents := make([]domain.InputDocument, 0, len(payload.Documents))
	for i, doc := range payload.Documents {
		name := strings.TrimSpace(doc.Name)
		if name == "" {
			name = fmt.Sprintf("document-%d", i+1)
		}
		documents = append(documents, domain.InputDocument{
			ID:        uuid.NewString(),
			Name:      name,
			Content:   doc.Content,
			WordCount: len(strings.Fields(doc.Content)),
			Type:      domain.TypeText,
		})
	}

	start := time.Now()
	result, err := rt.analyzer.Analyze(r.Context(), domain.AnalysisRequest{
		Documents:           documents,
		CompanySize:         payload.CompanySize,
		UseConsistencyCheck: useCheck,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordAnalysis(serviceName, string(result.Band), result.OverallScore, time.Since(start))
	}
	writeJSON(w, http.StatusOK, result)
}
