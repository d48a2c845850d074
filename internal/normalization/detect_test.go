package normalization

import "testing"

func TestDetectArrayOfRecords(t *testing.T) {
	payload := []interface{}{
		map[string]interface{}{"time": float64(1700000000), "bar_buy": float64(34000)},
	}
	if got := Detect(payload); got != FormatArrayOfRecords {
		t.Fatalf("expected array_of_records, got %s", got)
	}
}

func TestDetectLabelsDatasets(t *testing.T) {
	payload := map[string]interface{}{
		"data": map[string]interface{}{
			"labels": []interface{}{"2024-01-01"},
			"datasets": []interface{}{
				map[string]interface{}{"label": "Price", "data": []interface{}{float64(100)}},
			},
		},
	}
	if got := Detect(payload); got != FormatLabelsDatasets {
		t.Fatalf("expected labels_datasets, got %s", got)
	}
}

func TestDetectPredictionLabels(t *testing.T) {
	payload := map[string]interface{}{
		"labels": []interface{}{"2024-01-01"},
		"data":   []interface{}{float64(100)},
	}
	if got := Detect(payload); got != FormatPredictionLabels {
		t.Fatalf("expected prediction_labels, got %s", got)
	}
}

func TestDetectUnknown(t *testing.T) {
	cases := []interface{}{
		nil,
		"not a payload",
		float64(42),
		[]interface{}{},
		[]interface{}{"scalar element"},
		[]interface{}{map[string]interface{}{"foo": "bar"}},
		map[string]interface{}{"data": "not an object"},
	}
	for i, payload := range cases {
		if got := Detect(payload); got != FormatUnknown {
			t.Errorf("case %d: expected unknown, got %s", i, got)
		}
	}
}
