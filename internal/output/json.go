package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/finplan/finplan/internal/domain"
)

// JSONFormatter writes the plan as an indented JSON document.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

// Write renders the plan to w.
func (f *JSONFormatter) Write(w io.Writer, plan *domain.PlanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return nil
}
