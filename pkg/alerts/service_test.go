package alerts

import (
	"context"
	"testing"

	"github.com/envirohealth-ai/platform/pkg/common/models"
)

func TestHandleEventIgnoresOtherTypes(t *testing.T) {
	// A nil repository would panic on persist; ignoring must happen first.
	svc := NewService(nil)

	event := models.Event{
		Type: "report.generated",
		Data: map[string]interface{}{"report_id": "r1"},
	}
	if err := svc.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
